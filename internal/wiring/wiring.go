// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/snobb/imk/internal/adapters/config"
	_ "github.com/snobb/imk/internal/adapters/fs"
	_ "github.com/snobb/imk/internal/adapters/logger"
	_ "github.com/snobb/imk/internal/adapters/shell"
	_ "github.com/snobb/imk/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/snobb/imk/internal/app"
)
