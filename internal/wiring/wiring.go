// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/prepdeps/internal/adapters/cas"
	_ "go.trai.ch/prepdeps/internal/adapters/config"
	_ "go.trai.ch/prepdeps/internal/adapters/download"
	_ "go.trai.ch/prepdeps/internal/adapters/fs"
	_ "go.trai.ch/prepdeps/internal/adapters/git"
	_ "go.trai.ch/prepdeps/internal/adapters/logger"
	_ "go.trai.ch/prepdeps/internal/adapters/shell"
	_ "go.trai.ch/prepdeps/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/prepdeps/internal/app"
	_ "go.trai.ch/prepdeps/internal/engine/fetcher"
)
