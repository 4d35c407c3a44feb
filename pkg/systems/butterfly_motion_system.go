package systems

import (
	"math"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/game"
)

// ButterflyMotionSystem 每帧推进蝴蝶位置，并在越过画布边界时反弹
//
// 速度单位是"像素/帧"，因此 Update 不使用 deltaTime，
// 每次调用就是一帧。只在进行中阶段生效。
type ButterflyMotionSystem struct {
	session *game.GameSession
}

// NewButterflyMotionSystem 创建蝴蝶运动系统
func NewButterflyMotionSystem(session *game.GameSession) *ButterflyMotionSystem {
	return &ButterflyMotionSystem{
		session: session,
	}
}

// Advance 推进一帧
//
// 先移动再检查边界：坐标落在 [0, width] 之外时速度分量取反。
// 不修正位置，越界量最多为一帧的位移。
func Advance(pos *components.PositionComponent, vel *components.VelocityComponent, width, height float64) {
	pos.X += vel.VX
	pos.Y += vel.VY

	if pos.X < 0 || pos.X > width {
		vel.VX = -vel.VX
	}
	if pos.Y < 0 || pos.Y > height {
		vel.VY = -vel.VY
	}
}

// Update 推进场上所有蝴蝶一帧
func (s *ButterflyMotionSystem) Update(canvasWidth, canvasHeight float64) {
	if !s.session.IsRunning() {
		return
	}

	em := s.session.EntityManager
	for _, id := range s.session.ButterflyIDs() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		butterfly, _ := ecs.GetComponent[*components.ButterflyComponent](em, id)

		Advance(pos, vel, canvasWidth, canvasHeight)

		butterfly.WingPhase += config.WingFlapSpeed
		if butterfly.WingPhase > 2*math.Pi {
			butterfly.WingPhase -= 2 * math.Pi
		}
	}
}
