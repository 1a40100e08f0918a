package sync

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/keptn-contrib/gh-label-sync/internal/github"
	"github.com/keptn-contrib/gh-label-sync/internal/label"
	"github.com/keptn-contrib/gh-label-sync/internal/logger"
)

// Engine runs one reconciliation pipeline per repository: retrieve existing
// labels, build the sync plan, hand the plan to the configured action. All
// repositories run concurrently and independently; one pipeline's failure
// neither cancels nor affects the others.
type Engine struct {
	client  github.LabelService
	builder *label.PlanBuilder
	action  Action
	desired []label.Label
	log     logger.Logger
}

// NewEngine creates an Engine.
func NewEngine(client github.LabelService, builder *label.PlanBuilder, action Action, desired []label.Label, log logger.Logger) *Engine {
	return &Engine{
		client:  client,
		builder: builder,
		action:  action,
		desired: desired,
		log:     log,
	}
}

// SyncAll reconciles every repository identifier concurrently. It returns nil
// only when every pipeline succeeded; otherwise the first pipeline error is
// returned after all pipelines have settled. A deliberately plain
// errgroup.Group is used, without a shared context, so sibling pipelines keep
// running when one fails.
func (e *Engine) SyncAll(ctx context.Context, identifiers []string) error {
	var g errgroup.Group
	for _, identifier := range identifiers {
		identifier := identifier
		g.Go(func() error {
			return e.syncRepo(ctx, identifier)
		})
	}
	return g.Wait()
}

// syncRepo runs the pipeline for a single repository identifier.
func (e *Engine) syncRepo(ctx context.Context, identifier string) error {
	repo, err := ParseRepo(identifier)
	if err != nil {
		e.log.Error("skipping repository", "identifier", identifier, "error", err)
		return err
	}

	log := e.log.WithFields("repo", repo.String())

	existing, err := e.client.ListLabels(ctx, repo.Owner, repo.Name)
	if err != nil {
		log.Error("failed to retrieve existing labels", "error", err)
		return err
	}
	log.Debug("retrieved existing labels", "count", len(existing))

	plan := e.builder.BuildPlan(repo.Owner, repo.Name, e.desired, existing)
	log.Info("built sync plan",
		"creates", len(plan.LabelsToCreate()),
		"updates", len(plan.LabelsToUpdate()),
	)

	if err := e.action.Apply(ctx, plan); err != nil {
		log.Error("failed to apply sync plan", "error", err)
		return err
	}

	log.Info("repository synced")
	return nil
}
