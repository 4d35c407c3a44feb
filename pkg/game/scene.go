package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于在窗口尺寸变化时通知场景
//
// 画布尺寸跟随窗口变化，实现此接口的场景会在尺寸变化后
// 的下一次 Update 之前收到 OnResize()。
type Resizable interface {
	OnResize(width, height int)
}
