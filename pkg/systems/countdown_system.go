package systems

import (
	"github.com/decker502/butterfly/pkg/game"
)

// CountdownSystem 每秒倒计时
//
// 只负责扣减剩余时间；阶段切换由状态机根据返回值完成。
type CountdownSystem struct {
	session *game.GameSession
}

// NewCountdownSystem 创建倒计时系统
func NewCountdownSystem(session *game.GameSession) *CountdownSystem {
	return &CountdownSystem{
		session: session,
	}
}

// Tick 扣减一秒
//
// 返回：
//   - ticked: 本次是否扣减（非进行中阶段为 false）
//   - expired: 本次扣减后剩余时间是否归零
func (s *CountdownSystem) Tick() (ticked, expired bool) {
	if !s.session.IsRunning() {
		return false, false
	}

	if s.session.TimeRemaining > 0 {
		s.session.TimeRemaining--
	}
	return true, s.session.TimeRemaining == 0
}
