package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prepdeps/internal/adapters/download"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prepdeps/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prepdeps/internal/adapters/git"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prepdeps/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prepdeps/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/prepdeps/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "engine.fetcher"

func init() {
	graft.Register(graft.Node[*Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			download.NodeID,
			fs.FilesystemNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Fetcher, error) {
			vcs, err := graft.Dep[ports.VCS](ctx)
			if err != nil {
				return nil, err
			}

			downloader, err := graft.Dep[ports.Downloader](ctx)
			if err != nil {
				return nil, err
			}

			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(vcs, downloader, filesystem, log, telemetry), nil
		},
	})
}
