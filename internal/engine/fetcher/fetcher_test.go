package fetcher_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prepdeps/internal/core/domain"
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/prepdeps/internal/core/ports/mocks"
	"go.trai.ch/prepdeps/internal/engine/fetcher"
	"go.uber.org/mock/gomock"
)

const workDir = "/work"

type fixture struct {
	vcs        *mocks.MockVCS
	downloader *mocks.MockDownloader
	fs         *mocks.MockFilesystem
	logger     *mocks.MockLogger
	telemetry  *mocks.MockTelemetry
	vertex     *mocks.MockVertex
	fetcher    *fetcher.Fetcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		vcs:        mocks.NewMockVCS(ctrl),
		downloader: mocks.NewMockDownloader(ctrl),
		fs:         mocks.NewMockFilesystem(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		telemetry:  mocks.NewMockTelemetry(ctrl),
		vertex:     mocks.NewMockVertex(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, f.vertex), f.vertex
		}).AnyTimes()
	f.vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	f.fetcher = fetcher.New(f.vcs, f.downloader, f.fs, f.logger, f.telemetry)
	return f
}

func testPlan(t *testing.T) *domain.Plan {
	t.Helper()
	plan, err := domain.NewPlan(workDir, &domain.Manifest{
		Root: "lib",
		Dependencies: []domain.Dependency{
			{Name: "vdu", Kind: domain.KindRepository, Source: "https://example.com/vdu.git", Destination: "lib/vdu"},
			{Name: "chaiscript", Kind: domain.KindRepository, Source: "https://example.com/chai.git", Destination: "lib/chaiscript", Revision: "release-6.x"},
			{Name: "glm", Kind: domain.KindRepository, Source: "https://example.com/glm.git", Destination: "lib/glm", Revision: "8f39bb8"},
			{Name: "stb_image", Kind: domain.KindFile, Source: "https://example.com/stb_image.h", Destination: "lib/stb/stb/stb_image.h"},
			{Name: "stb_image_write", Kind: domain.KindFile, Source: "https://example.com/stb_image_write.h", Destination: "lib/stb/stb/stb_image_write.h"},
		},
	})
	require.NoError(t, err)
	return plan
}

func p(parts ...string) string {
	return filepath.Join(append([]string{workDir}, parts...)...)
}

func statuses(report *domain.Report) []domain.StepStatus {
	out := make([]domain.StepStatus, len(report.Results))
	for i, r := range report.Results {
		out[i] = r.Status
	}
	return out
}

func TestFetcher_Run_Success(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.vcs.EXPECT().Clone(gomock.Any(), "https://example.com/vdu.git", p("lib", "vdu")).Return(nil),
		f.vcs.EXPECT().Clone(gomock.Any(), "https://example.com/chai.git", p("lib", "chaiscript")).Return(nil),
		f.vcs.EXPECT().Clone(gomock.Any(), "https://example.com/glm.git", p("lib", "glm")).Return(nil),
		f.fs.EXPECT().CreateDir(p("lib", "stb", "stb")).Return(nil),
		f.downloader.EXPECT().Download(gomock.Any(), "https://example.com/stb_image.h", p("lib", "stb", "stb", "stb_image.h")).Return(nil),
		f.downloader.EXPECT().Download(gomock.Any(), "https://example.com/stb_image_write.h", p("lib", "stb", "stb", "stb_image_write.h")).Return(nil),
		f.fs.EXPECT().DirExists(p("lib", "chaiscript")).Return(true),
		f.vcs.EXPECT().Checkout(gomock.Any(), p("lib", "chaiscript"), "release-6.x").Return(nil),
		f.fs.EXPECT().DirExists(p("lib", "glm")).Return(true),
		f.vcs.EXPECT().Checkout(gomock.Any(), p("lib", "glm"), "8f39bb8").Return(nil),
	)

	report, err := f.fetcher.Run(context.Background(), testPlan(t))
	require.NoError(t, err)
	assert.Len(t, report.Completed(), 8)
	assert.Empty(t, report.Ignored())
	assert.Empty(t, report.Failed())
}

func TestFetcher_Run_CloneFailureIgnored(t *testing.T) {
	f := newFixture(t)
	cloneErr := errors.New("destination path 'lib/vdu' already exists and is not an empty directory")

	f.vcs.EXPECT().Clone(gomock.Any(), "https://example.com/vdu.git", gomock.Any()).Return(cloneErr)
	f.vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	f.fs.EXPECT().CreateDir(gomock.Any()).Return(nil)
	f.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.fs.EXPECT().DirExists(gomock.Any()).Return(true).Times(2)
	f.vcs.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	report, err := f.fetcher.Run(context.Background(), testPlan(t))
	require.NoError(t, err)

	require.Len(t, report.Ignored(), 1)
	ignored := report.Ignored()[0]
	assert.Equal(t, "clone vdu", ignored.Step.Name())
	require.Error(t, ignored.Err)
	assert.Contains(t, ignored.Err.Error(), "already exists")
	assert.Len(t, report.Completed(), 7)
}

func TestFetcher_Run_MkdirFailureIsFatal(t *testing.T) {
	f := newFixture(t)

	f.vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("exists")).Times(3)
	f.logger.EXPECT().Warn(gomock.Any()).Times(3)
	f.fs.EXPECT().CreateDir(p("lib", "stb", "stb")).Return(domain.ErrDestinationExists)
	f.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.vcs.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := f.fetcher.Run(context.Background(), testPlan(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchAborted))
	assert.Contains(t, err.Error(), "destination already exists")

	assert.Equal(t, []domain.StepStatus{
		domain.StepStatusIgnored,
		domain.StepStatusIgnored,
		domain.StepStatusIgnored,
		domain.StepStatusFailed,
		domain.StepStatusSkipped,
		domain.StepStatusSkipped,
		domain.StepStatusSkipped,
		domain.StepStatusSkipped,
	}, statuses(report))
}

func TestFetcher_Run_DownloadFailureIsFatal(t *testing.T) {
	f := newFixture(t)

	f.vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.fs.EXPECT().CreateDir(gomock.Any()).Return(nil)
	f.downloader.EXPECT().Download(gomock.Any(), "https://example.com/stb_image.h", gomock.Any()).
		Return(errors.New("no such host"))

	report, err := f.fetcher.Run(context.Background(), testPlan(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchAborted))
	assert.Contains(t, err.Error(), "no such host")

	require.Len(t, report.Failed(), 1)
	assert.Equal(t, "download stb_image", report.Failed()[0].Step.Name())
	assert.Len(t, report.Skipped(), 3)
}

func TestFetcher_Run_CheckoutDirMissingIsFatal(t *testing.T) {
	f := newFixture(t)

	f.vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.fs.EXPECT().CreateDir(gomock.Any()).Return(nil)
	f.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.fs.EXPECT().DirExists(p("lib", "chaiscript")).Return(false)
	f.vcs.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := f.fetcher.Run(context.Background(), testPlan(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchAborted))
	assert.Contains(t, err.Error(), "checkout directory missing")

	assert.Equal(t, "checkout chaiscript", report.Failed()[0].Step.Name())
	require.Len(t, report.Skipped(), 1)
	assert.Equal(t, "checkout glm", report.Skipped()[0].Step.Name())
}

func TestFetcher_Run_CheckoutFailureIgnored(t *testing.T) {
	f := newFixture(t)

	f.vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.fs.EXPECT().CreateDir(gomock.Any()).Return(nil)
	f.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.fs.EXPECT().DirExists(gomock.Any()).Return(true).Times(2)
	gomock.InOrder(
		f.vcs.EXPECT().Checkout(gomock.Any(), p("lib", "chaiscript"), "release-6.x").Return(errors.New("pathspec did not match")),
		f.vcs.EXPECT().Checkout(gomock.Any(), p("lib", "glm"), "8f39bb8").Return(nil),
	)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	report, err := f.fetcher.Run(context.Background(), testPlan(t))
	require.NoError(t, err)
	require.Len(t, report.Ignored(), 1)
	assert.Equal(t, "checkout chaiscript", report.Ignored()[0].Step.Name())
	assert.Equal(t, domain.StepStatusCompleted, report.Results[len(report.Results)-1].Status)
}

func TestFetcher_Run_Cancelled(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	f.vcs.EXPECT().Clone(gomock.Any(), "https://example.com/vdu.git", gomock.Any()).
		DoAndReturn(func(context.Context, string, string) error {
			cancel()
			return context.Canceled
		})
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	report, err := f.fetcher.Run(ctx, testPlan(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchAborted))
	assert.True(t, errors.Is(err, context.Canceled))

	assert.Equal(t, domain.StepStatusIgnored, report.Results[0].Status)
	assert.Len(t, report.Skipped(), len(report.Results)-1)
}

func TestFetcher_Run_RecordsVertexPerStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	vcs := mocks.NewMockVCS(ctrl)
	filesystem := mocks.NewMockFilesystem(ctrl)
	downloader := mocks.NewMockDownloader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	log.EXPECT().Info(gomock.Any()).AnyTimes()

	plan, err := domain.NewPlan(workDir, &domain.Manifest{
		Root: "lib",
		Dependencies: []domain.Dependency{
			{Name: "stb_image", Kind: domain.KindFile, Source: "https://example.com/stb_image.h", Destination: "lib/stb/stb_image.h"},
		},
	})
	require.NoError(t, err)

	downloadErr := errors.New("404")
	gomock.InOrder(
		telemetry.EXPECT().Record(gomock.Any(), "mkdir lib/stb").Return(context.Background(), vertex),
		filesystem.EXPECT().CreateDir(p("lib", "stb")).Return(nil),
		vertex.EXPECT().Complete(nil),
		telemetry.EXPECT().Record(gomock.Any(), "download stb_image").Return(context.Background(), vertex),
		downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).Return(downloadErr),
		vertex.EXPECT().Complete(gomock.Any()).Do(func(err error) {
			assert.ErrorContains(t, err, "404")
		}),
	)

	_, err = fetcher.New(vcs, downloader, filesystem, log, telemetry).Run(context.Background(), plan)
	require.Error(t, err)
}
