package git

import (
	"context"
	"os/exec"

	"github.com/grindlemire/graft"
	"go.trai.ch/prepdeps/internal/adapters/logger"
	"go.trai.ch/prepdeps/internal/adapters/shell"
	"go.trai.ch/prepdeps/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the VCS Graft node.
	NodeID graft.ID = "adapter.vcs"
	// InspectorNodeID is the unique identifier for the repository inspector Graft node.
	InspectorNodeID graft.ID = "adapter.vcs_inspector"
)

func init() {
	graft.Register(graft.Node[ports.VCS]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.VCS, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Select(executor, log, exec.LookPath), nil
		},
	})

	graft.Register(graft.Node[ports.Inspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Inspector, error) {
			return NewNative(), nil
		},
	})
}

// Select returns the git CLI backend when the binary is on PATH and the
// in-process backend otherwise.
func Select(executor ports.Executor, log ports.Logger, lookPath func(string) (string, error)) ports.VCS {
	if _, err := lookPath(Binary); err == nil {
		return NewCLI(executor)
	}
	log.Warn("git not found on PATH, using the built-in git implementation")
	return NewNative()
}
