package sync

import (
	"context"

	"github.com/keptn-contrib/gh-label-sync/internal/label"
)

// Action consumes a completed sync plan. The two implementations are the
// Executor, which applies the plan against GitHub, and the DryRunWriter,
// which serializes it to a file. The action is selected once at startup and
// injected into every repository pipeline.
type Action interface {
	Apply(ctx context.Context, plan *label.SyncPlan) error
}
