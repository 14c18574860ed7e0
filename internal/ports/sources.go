package ports

import (
	"context"

	"github.com/bnema/bizassist-cli/internal/domain"
)

type ModuleSource interface {
	Status(ctx context.Context, module domain.ModuleID) (domain.ModuleStatus, error)
	Summary(ctx context.Context, module domain.ModuleID) (domain.Snapshot, error)
}

type PlatformSource interface {
	HealthScore(ctx context.Context) (domain.Snapshot, error)
	CarbonEstimate(ctx context.Context) (domain.Snapshot, error)
	Recommendations(ctx context.Context) (domain.Snapshot, error)
}

type Assistant interface {
	Ask(ctx context.Context, question string, moduleData domain.AggregateContext) (domain.Answer, error)
}
