// Package fetcher executes a dependency plan step by step.
package fetcher

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher runs the steps of a plan strictly in order. Clone failures and
// checkout failures are tolerated. A failure to create the download
// directory, a failed download or a missing checkout directory aborts the run.
type Fetcher struct {
	vcs        ports.VCS
	downloader ports.Downloader
	fs         ports.Filesystem
	logger     ports.Logger
	telemetry  ports.Telemetry
}

// New creates a new Fetcher.
func New(
	vcs ports.VCS,
	downloader ports.Downloader,
	fs ports.Filesystem,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Fetcher {
	return &Fetcher{
		vcs:        vcs,
		downloader: downloader,
		fs:         fs,
		logger:     logger,
		telemetry:  telemetry,
	}
}

// Run executes every step of the plan. The returned report is always
// non-nil. The error is non-nil only when a fatal step failed or ctx was
// cancelled, and then wraps domain.ErrFetchAborted.
func (f *Fetcher) Run(ctx context.Context, plan *domain.Plan) (*domain.Report, error) {
	report := domain.NewReport(plan)

	for i := range plan.Steps {
		step := &plan.Steps[i]
		res := &report.Results[i]

		if err := ctx.Err(); err != nil {
			skipFrom(report, i)
			return report, errors.Join(domain.ErrFetchAborted, zerr.With(zerr.Wrap(err, "interrupted"), "step", step.Name()))
		}

		f.logger.Info(describe(step))

		stepCtx, vertex := f.telemetry.Record(ctx, step.Name())
		fatal, err := f.runStep(stepCtx, step)
		vertex.Complete(err)

		switch {
		case err == nil:
			res.Status = domain.StepStatusCompleted
		case fatal:
			res.Status = domain.StepStatusFailed
			res.Err = err
			skipFrom(report, i+1)
			return report, errors.Join(domain.ErrFetchAborted, zerr.With(err, "step", step.Name()))
		default:
			res.Status = domain.StepStatusIgnored
			res.Err = err
			f.logger.Warn(fmt.Sprintf("%s failed, continuing: %v", step.Name(), err))
		}
	}

	return report, nil
}

// runStep reports whether a failure of the step is fatal alongside its error.
func (f *Fetcher) runStep(ctx context.Context, step *domain.Step) (bool, error) {
	dep := &step.Dependency

	switch step.Kind {
	case domain.StepClone:
		return false, f.annotate(f.vcs.Clone(ctx, dep.Source, step.Path), dep)

	case domain.StepMkdir:
		return true, f.fs.CreateDir(step.Path)

	case domain.StepDownload:
		return true, f.annotate(f.downloader.Download(ctx, dep.Source, step.Path), dep)

	case domain.StepCheckout:
		if !f.fs.DirExists(step.Path) {
			err := zerr.With(domain.ErrCheckoutDirMissing, "path", step.Path)
			return true, zerr.With(err, "dependency", dep.Name)
		}
		return false, f.annotate(f.vcs.Checkout(ctx, step.Path, dep.Revision), dep)

	default:
		return true, zerr.With(zerr.New("unknown step kind"), "kind", string(step.Kind))
	}
}

func (f *Fetcher) annotate(err error, dep *domain.Dependency) error {
	if err == nil {
		return nil
	}
	return zerr.With(err, "dependency", dep.Name)
}

func describe(step *domain.Step) string {
	switch step.Kind {
	case domain.StepClone:
		return fmt.Sprintf("cloning %s into %s", step.Dependency.Name, step.Target)
	case domain.StepMkdir:
		return "creating " + step.Target
	case domain.StepDownload:
		return fmt.Sprintf("downloading %s to %s", step.Dependency.Name, step.Target)
	case domain.StepCheckout:
		return fmt.Sprintf("checking out %s at %s", step.Dependency.Name, step.Dependency.Revision)
	default:
		return step.Name()
	}
}

func skipFrom(report *domain.Report, start int) {
	for j := start; j < len(report.Results); j++ {
		report.Results[j].Status = domain.StepStatusSkipped
	}
}
