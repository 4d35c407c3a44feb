package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/entities"
	"github.com/decker502/butterfly/pkg/game"
)

const (
	testCanvasWidth  = 800.0
	testCanvasHeight = 600.0
)

// newRunningSession 创建处于进行中阶段的空会话
func newRunningSession(t *testing.T) *game.GameSession {
	t.Helper()
	session := game.NewGameSession()
	session.Phase = game.PhaseRunning
	session.Started = true
	return session
}

// placeButterfly 在指定位置放置一只静止的蝴蝶
func placeButterfly(session *game.GameSession, x, y float64) {
	entities.AddButterfly(session.EntityManager, entities.ButterflyState{
		X:    x,
		Y:    y,
		Size: config.DefaultGameConfig().ButterflySize,
	})
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
