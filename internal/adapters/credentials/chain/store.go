package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/bizassist-cli/internal/adapters/credentials/file"
	passstore "github.com/bnema/bizassist-cli/internal/adapters/credentials/pass"
	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/ports"
)

// Store tries the primary backend first and falls back to the secondary one
// when the primary is unusable.
type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary ports.CredentialStore, fallback ports.CredentialStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.CredentialStore, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passEntry string, fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(passEntry), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, token string) error {
	err := s.primary.Put(ctx, token)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, token)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

// Get returns domain.ErrNoCredential only when neither backend holds a token.
func (s *Store) Get(ctx context.Context) (string, error) {
	token, err := s.primary.Get(ctx)
	if err == nil {
		return token, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackToken, fallbackErr := s.fallback.Get(ctx)
	if fallbackErr == nil {
		return fallbackToken, nil
	}
	if errors.Is(err, domain.ErrNoCredential) && errors.Is(fallbackErr, domain.ErrNoCredential) {
		return "", domain.ErrNoCredential
	}
	if errors.Is(fallbackErr, domain.ErrNoCredential) && errors.Is(err, passstore.ErrUnavailable) {
		return "", domain.ErrNoCredential
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete clears both backends so a stale token cannot resurface from the
// fallback after invalidation.
func (s *Store) Delete(ctx context.Context) error {
	err := s.primary.Delete(ctx)
	if shouldSkipFallback(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Delete(ctx)
	if err == nil && fallbackErr == nil {
		return nil
	}

	return errors.Join(wrapBackendErr("primary", err), wrapBackendErr("fallback", fallbackErr))
}

func wrapBackendErr(backend string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s backend delete failed: %w", backend, err)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
