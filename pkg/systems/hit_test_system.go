package systems

import (
	"math"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/game"
)

// HitTestSystem 处理画布点击
//
// 从最新生成的蝴蝶开始检查，第一只距离小于命中半径的被移除并加一分。
// 每次点击最多移除一只。
type HitTestSystem struct {
	session *game.GameSession
	cfg     *config.GameConfig
}

// NewHitTestSystem 创建点击命中系统
func NewHitTestSystem(session *game.GameSession, cfg *config.GameConfig) *HitTestSystem {
	return &HitTestSystem{
		session: session,
		cfg:     cfg,
	}
}

// HandleClick 处理一次点击，返回是否命中
func (s *HitTestSystem) HandleClick(x, y float64) bool {
	if !s.session.IsRunning() {
		return false
	}

	em := s.session.EntityManager
	// ID 快照：移除发生在遍历结束之前，但移除后立即退出
	ids := s.session.ButterflyIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, ids[i])
		if !ok {
			continue
		}
		if math.Hypot(pos.X-x, pos.Y-y) >= s.cfg.HitRadius {
			continue
		}

		em.RemoveEntity(ids[i])
		s.session.Score++
		return true
	}
	return false
}
