// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hoop/internal/adapters/cas"
	_ "go.trai.ch/hoop/internal/adapters/config"
	_ "go.trai.ch/hoop/internal/adapters/fs"
	_ "go.trai.ch/hoop/internal/adapters/logger"
	_ "go.trai.ch/hoop/internal/adapters/pattern"
	_ "go.trai.ch/hoop/internal/adapters/report"
	_ "go.trai.ch/hoop/internal/adapters/telemetry"
	_ "go.trai.ch/hoop/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/hoop/internal/app"
	_ "go.trai.ch/hoop/internal/engine/export"
	_ "go.trai.ch/hoop/internal/engine/planner"
)
