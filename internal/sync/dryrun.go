package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/keptn-contrib/gh-label-sync/internal/label"
	"github.com/keptn-contrib/gh-label-sync/internal/logger"
)

// DryRunWriter serializes sync plans to JSON files instead of touching the
// remote repository. One file per repository, named
// <owner>_<repository>_plan.json inside the output directory.
type DryRunWriter struct {
	fs        afero.Fs
	outputDir string
	log       logger.Logger
}

// NewDryRunWriter creates a DryRunWriter writing into outputDir on fs.
func NewDryRunWriter(fs afero.Fs, outputDir string, log logger.Logger) *DryRunWriter {
	return &DryRunWriter{fs: fs, outputDir: outputDir, log: log}
}

// PlanFileName returns the artifact name for a repository.
func PlanFileName(owner, repository string) string {
	return fmt.Sprintf("%s_%s_plan.json", owner, repository)
}

// Apply writes the serialized plan. The write is atomic from the caller's
// perspective: the plan is written to a temporary file and renamed into
// place, so a failure never leaves a partial artifact behind.
func (w *DryRunWriter) Apply(ctx context.Context, plan *label.SyncPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize plan for %s/%s: %w", plan.Owner, plan.Repository, err)
	}
	data = append(data, '\n')

	if err := w.fs.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.outputDir, err)
	}

	path := filepath.Join(w.outputDir, PlanFileName(plan.Owner, plan.Repository))
	tmpPath := path + ".tmp"

	if err := afero.WriteFile(w.fs, tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan file %s: %w", tmpPath, err)
	}
	if err := w.fs.Rename(tmpPath, path); err != nil {
		w.fs.Remove(tmpPath)
		return fmt.Errorf("failed to finalize plan file %s: %w", path, err)
	}

	w.log.Info("wrote dry-run plan",
		"path", path,
		"creates", len(plan.LabelsToCreate()),
		"updates", len(plan.LabelsToUpdate()),
	)
	return nil
}
