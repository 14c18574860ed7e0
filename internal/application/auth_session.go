package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/platform/logger"
	"github.com/bnema/bizassist-cli/internal/ports"
)

// AuthSession is the explicit owner of the platform credential. It is created
// at startup, handed to every outbound client, and invalidated when the
// backend rejects the credential. The token is read from the store once and
// kept until the session is signed in again or invalidated.
type AuthSession struct {
	store    ports.CredentialStore
	profiles ports.ProfileRepository
	clock    ports.Clock
	log      *logger.Logger

	mu     sync.Mutex
	loaded bool
	token  string
}

var _ ports.Credentials = (*AuthSession)(nil)

func NewAuthSession(store ports.CredentialStore, profiles ports.ProfileRepository, clock ports.Clock, log *logger.Logger) *AuthSession {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AuthSession{store: store, profiles: profiles, clock: clock, log: log.OrNop()}
}

func (s *AuthSession) Bearer(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.token
	}

	token, err := s.store.Get(ctx)
	switch {
	case err == nil:
		s.token = strings.TrimSpace(token)
		s.loaded = true
	case errors.Is(err, domain.ErrNoCredential):
		s.token = ""
		s.loaded = true
	default:
		// Not cached, the next call retries the store.
		s.log.Warn("load credential failed, continuing unauthenticated", "error", err)
		return ""
	}

	return s.token
}

func (s *AuthSession) remember(token string) {
	s.mu.Lock()
	s.token = token
	s.loaded = true
	s.mu.Unlock()
}

func (s *AuthSession) forget() {
	s.mu.Lock()
	s.loaded = false
	s.token = ""
	s.mu.Unlock()
}

func (s *AuthSession) Invalidate(ctx context.Context) error {
	s.remember("")

	var errs error
	if err := s.store.Delete(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("delete credential: %w", err))
	}
	if err := s.profiles.Clear(ctx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("clear profile: %w", err))
	}
	if errs != nil {
		return fmt.Errorf("invalidate session: %w", errs)
	}

	s.log.Debug("session invalidated")
	return nil
}

// SignIn stores a freshly issued credential with its profile. The credential
// is rolled back when the profile cannot be saved.
func (s *AuthSession) SignIn(ctx context.Context, token string, profile domain.Profile) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("access token is empty")
	}

	if err := s.store.Put(ctx, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	if profile.SignedInAt.IsZero() {
		profile.SignedInAt = s.clock.Now()
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		s.forget()
		if rollbackErr := s.store.Delete(ctx); rollbackErr != nil {
			return fmt.Errorf("save profile and rollback stored credential: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save profile: %w", err)
	}

	s.remember(token)
	return nil
}

func (s *AuthSession) SignOut(ctx context.Context) error {
	return s.Invalidate(ctx)
}

func (s *AuthSession) Profile(ctx context.Context) (domain.Profile, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}
