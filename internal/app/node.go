package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prepdeps/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/prepdeps/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/prepdeps/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/prepdeps/internal/adapters/git"                //nolint:depguard // Wired in app layer
	"go.trai.ch/prepdeps/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/prepdeps/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/prepdeps/internal/core/ports"
	"go.trai.ch/prepdeps/internal/engine/fetcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds everything the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fetcher.NodeID,
			git.InspectorNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			fs.VerifierNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	f, err := graft.Dep[*fetcher.Fetcher](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.Inspector](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
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

	return New(loader, f, inspector, hasher, store, verifier, log, telemetry), nil
}
