package application

import (
	"context"
	"errors"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/platform/logger"
	"github.com/bnema/bizassist-cli/internal/ports"
)

var errRecommendationsNotList = errors.New("recommendations payload is not a list")

// ContextCollector produces a fresh aggregate context.
type ContextCollector interface {
	Collect(ctx context.Context) domain.AggregateContext
}

type CollectorFunc func(ctx context.Context) domain.AggregateContext

func (f CollectorFunc) Collect(ctx context.Context) domain.AggregateContext {
	return f(ctx)
}

type Aggregator struct {
	prober   *Prober
	modules  ports.ModuleSource
	platform ports.PlatformSource
	log      *logger.Logger
}

var _ ContextCollector = (*Aggregator)(nil)

func NewAggregator(modules ports.ModuleSource, platform ports.PlatformSource, log *logger.Logger) *Aggregator {
	log = log.OrNop()
	return &Aggregator{
		prober:   NewProber(modules, log),
		modules:  modules,
		platform: platform,
		log:      log,
	}
}

// Collect runs one probe, fetch and assemble cycle. It always returns a
// complete context: every failed call becomes a defaulted slot.
func (a *Aggregator) Collect(ctx context.Context) domain.AggregateContext {
	probes := a.prober.Probe(ctx)

	tasks := make([]Task[domain.Snapshot], 0, SlotCount)
	tasks = append(tasks, a.platform.HealthScore)
	tasks = append(tasks, FetchTasks(a.modules, probes)...)
	tasks = append(tasks, a.platform.CarbonEstimate, a.recommendations)

	settlements := SettleAll(ctx, tasks...)

	var slots Slots
	for i := range slots {
		if err := settlements[i].Err; err != nil {
			a.log.Debug("fetch failed, using default", "slot", slotName(i), "error", err)
		}
		slots[i] = settlements[i].ValueOr(nil)
	}
	if domain.IsNull(slots[SlotRecommendations]) {
		slots[SlotRecommendations] = domain.EmptyList()
	}

	aggregate := Assemble(slots)
	a.log.Debug("module data collected", "connected", aggregate.Connected())
	return aggregate
}

func (a *Aggregator) recommendations(ctx context.Context) (domain.Snapshot, error) {
	list, err := a.platform.Recommendations(ctx)
	if err != nil {
		return nil, err
	}
	if !domain.IsNull(list) && !domain.IsList(list) {
		return nil, errRecommendationsNotList
	}
	return list, nil
}

func slotName(i int) string {
	switch i {
	case SlotHealth:
		return "health"
	case SlotExpense:
		return string(domain.ModuleExpense)
	case SlotFraud:
		return string(domain.ModuleFraud)
	case SlotInventory:
		return string(domain.ModuleInventory)
	case SlotGreenGrid:
		return string(domain.ModuleGreenGrid)
	case SlotCarbon:
		return "carbon"
	case SlotRecommendations:
		return "recommendations"
	default:
		return "unknown"
	}
}
