package ports

import "context"

// CredentialStore persists the bearer credential for the platform API.
// Get returns domain.ErrNoCredential when nothing is stored.
type CredentialStore interface {
	Get(ctx context.Context) (string, error)
	Put(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// Credentials is the live session view used by outbound calls.
type Credentials interface {
	// Bearer returns the current token, or "" when unauthenticated.
	Bearer(ctx context.Context) string
	// Invalidate drops the session after the backend rejected it.
	Invalidate(ctx context.Context) error
}
