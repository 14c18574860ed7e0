package application

import (
	"context"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/platform/logger"
	"github.com/bnema/bizassist-cli/internal/ports"
)

type ModuleProbe struct {
	Module domain.ModuleID
	Status domain.ModuleStatus
}

type Prober struct {
	source ports.ModuleSource
	log    *logger.Logger
}

func NewProber(source ports.ModuleSource, log *logger.Logger) *Prober {
	return &Prober{source: source, log: log.OrNop()}
}

// Probe asks every module whether it holds uploaded data. A probe that fails
// counts as "no data"; Probe itself never fails. Results follow
// domain.Modules order.
func (p *Prober) Probe(ctx context.Context) []ModuleProbe {
	tasks := make([]Task[domain.ModuleStatus], 0, len(domain.Modules))
	for _, module := range domain.Modules {
		tasks = append(tasks, func(ctx context.Context) (domain.ModuleStatus, error) {
			return p.source.Status(ctx, module)
		})
	}

	settlements := SettleAll(ctx, tasks...)

	probes := make([]ModuleProbe, len(domain.Modules))
	for i, module := range domain.Modules {
		if err := settlements[i].Err; err != nil {
			p.log.Debug("module probe failed, treating as no data", "module", module, "error", err)
		}
		probes[i] = ModuleProbe{
			Module: module,
			Status: settlements[i].ValueOr(domain.ModuleStatus{HasData: false}),
		}
	}

	return probes
}
