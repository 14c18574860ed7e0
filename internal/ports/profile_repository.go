package ports

import (
	"context"

	"github.com/bnema/bizassist-cli/internal/domain"
)

type ProfileRepository interface {
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
	Clear(ctx context.Context) error
}
