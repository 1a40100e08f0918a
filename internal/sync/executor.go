package sync

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/keptn-contrib/gh-label-sync/internal/github"
	"github.com/keptn-contrib/gh-label-sync/internal/label"
	"github.com/keptn-contrib/gh-label-sync/internal/logger"
)

// Executor applies a sync plan against the GitHub API. All update requests
// are issued concurrently and awaited before any create request goes out, so
// a rename can never collide with a newly created label of the same name.
// Failed plans are not retried or rolled back; requests that already
// succeeded stay applied.
type Executor struct {
	client github.LabelService
	log    logger.Logger
}

// NewExecutor creates an Executor using the given label service.
func NewExecutor(client github.LabelService, log logger.Logger) *Executor {
	return &Executor{client: client, log: log}
}

// Apply executes the plan's updates, then its creates.
func (e *Executor) Apply(ctx context.Context, plan *label.SyncPlan) error {
	updates := plan.LabelsToUpdate()

	var g errgroup.Group
	for _, existingName := range plan.UpdateOrder() {
		existingName := existingName
		desired := updates[existingName]
		g.Go(func() error {
			e.log.Debug("updating label",
				"repo", plan.Owner+"/"+plan.Repository,
				"from", existingName,
				"to", desired.Name,
			)
			return e.client.UpdateLabel(ctx, plan.Owner, plan.Repository, existingName, desired)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("label update failed for %s/%s: %w", plan.Owner, plan.Repository, err)
	}

	var cg errgroup.Group
	for _, desired := range plan.LabelsToCreate() {
		desired := desired
		cg.Go(func() error {
			e.log.Debug("creating label",
				"repo", plan.Owner+"/"+plan.Repository,
				"name", desired.Name,
			)
			return e.client.CreateLabel(ctx, plan.Owner, plan.Repository, desired)
		})
	}
	if err := cg.Wait(); err != nil {
		return fmt.Errorf("label creation failed for %s/%s: %w", plan.Owner, plan.Repository, err)
	}

	return nil
}
