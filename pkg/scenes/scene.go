package scenes

import (
	"github.com/decker502/butterfly/pkg/game"
)

// Scene is a type alias for game.Scene so callers can stay inside this package.
type Scene = game.Scene

var (
	_ Scene          = (*GameScene)(nil)
	_ game.Resizable = (*GameScene)(nil)
	_ game.UIShell   = (*GameScene)(nil)
)
