package application

import (
	"context"

	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/ports"
)

// FetchTaskFor builds the summary fetch for one probed module. A module
// without data resolves to nil and its summary endpoint is never called.
func FetchTaskFor(source ports.ModuleSource, probe ModuleProbe) Task[domain.Snapshot] {
	if !probe.Status.HasData {
		return func(context.Context) (domain.Snapshot, error) {
			return nil, nil
		}
	}

	module := probe.Module
	return func(ctx context.Context) (domain.Snapshot, error) {
		return source.Summary(ctx, module)
	}
}

func FetchTasks(source ports.ModuleSource, probes []ModuleProbe) []Task[domain.Snapshot] {
	tasks := make([]Task[domain.Snapshot], 0, len(probes))
	for _, probe := range probes {
		tasks = append(tasks, FetchTaskFor(source, probe))
	}
	return tasks
}
