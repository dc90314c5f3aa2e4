// Package app implements the application layer for prepdeps.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/prepdeps/internal/engine/fetcher"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	fetcher   *fetcher.Fetcher
	inspector ports.Inspector
	hasher    ports.Hasher
	store     ports.RecordStore
	verifier  ports.Verifier
	logger    ports.Logger
	telemetry ports.Telemetry

	workDir string
	now     func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	f *fetcher.Fetcher,
	inspector ports.Inspector,
	hasher ports.Hasher,
	store ports.RecordStore,
	verifier ports.Verifier,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		fetcher:   f,
		inspector: inspector,
		hasher:    hasher,
		store:     store,
		verifier:  verifier,
		logger:    logger,
		telemetry: telemetry,
		workDir:   ".",
		now:       time.Now,
	}
}

// WithWorkDir sets the directory destinations and fetch records are
// resolved against.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithManifestLoader replaces the source of the dependency manifest.
func (a *App) WithManifestLoader(loader ports.ManifestLoader) *App {
	a.loader = loader
	return a
}

// WithClock sets the time source used to stamp fetch records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Run fetches every dependency in the manifest. The returned error is
// non-nil only when the manifest is unusable or a fatal step failed.
func (a *App) Run(ctx context.Context) error {
	// 1. Load the manifest
	manifest, err := a.loader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load dependency manifest")
	}

	// 2. Expand it into a plan
	plan, err := domain.NewPlan(a.workDir, manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to plan dependency preparation")
	}

	// 3. Execute
	report, runErr := a.fetcher.Run(ctx, plan)

	// 4. Summarize what was fetched
	a.summarize(ctx, report)
	a.verify(plan)

	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
	}

	return runErr
}

// summarize writes a fetch record for every completed clone and download.
// Failures are reported as warnings only.
func (a *App) summarize(ctx context.Context, report *domain.Report) {
	var (
		mu      sync.Mutex
		records []domain.FetchRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, res := range report.Completed() {
		step := res.Step
		if step.Kind != domain.StepClone && step.Kind != domain.StepDownload {
			continue
		}

		g.Go(func() error {
			record, err := a.buildRecord(gctx, &step)
			if err != nil {
				a.logger.Warn(fmt.Sprintf("skipping record for %s: %v", step.Dependency.Name, err))
				return nil
			}

			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	lockfile := domain.NewLockfile(records)
	var stored int
	for _, record := range lockfile.Records {
		if err := a.store.Put(a.workDir, record); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to store record for %s: %v", record.Name, err))
			continue
		}
		stored++
	}

	if stored > 0 {
		a.logger.Info(fmt.Sprintf("recorded %d fetched dependencies", stored))
	}
}

func (a *App) buildRecord(ctx context.Context, step *domain.Step) (domain.FetchRecord, error) {
	dep := step.Dependency
	record := domain.FetchRecord{
		Name:        dep.Name,
		Kind:        dep.Kind,
		Source:      dep.Source,
		Destination: dep.Destination,
		FetchedAt:   a.now().UTC(),
	}

	switch step.Kind {
	case domain.StepClone:
		head, err := a.inspector.Head(ctx, step.Path)
		if err != nil {
			return domain.FetchRecord{}, err
		}
		record.Revision = head
	case domain.StepDownload:
		hash, err := a.hasher.HashFile(step.Path)
		if err != nil {
			return domain.FetchRecord{}, err
		}
		record.ContentHash = hash
	}

	return record, nil
}

func (a *App) verify(plan *domain.Plan) {
	destinations := plan.Destinations()
	present, err := a.verifier.Populated(destinations)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("failed to verify dependency paths: %v", err))
		return
	}
	a.logger.Info(fmt.Sprintf("%d of %d dependency paths populated", len(present), len(destinations)))
}
