package game

import (
	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/ecs"
)

// GameSession 一局游戏的全部状态
//
// 由状态机（SessionModule）持有并作为参数传给各个系统，不使用包级变量。
// 返回菜单或重新初始化时整体重建，不跨局保留任何数据。
type GameSession struct {
	Score            int    // 当前得分，开局清零
	TimeRemaining    int    // 剩余时间（秒）
	Phase            Phase  // 当前阶段
	SelectedDuration int    // 玩家选择的时长（秒），返回菜单时保留
	Started          bool   // 本局是否已开始过（继续按钮的前置条件）
	FinalScore       int    // 倒计时归零瞬间的得分
	RunID            string // 每次开局生成，用于关联同一局的日志

	// EntityManager 存放场上的蝴蝶
	// 实体 ID 单调递增，按 ID 排序即为生成顺序
	EntityManager *ecs.EntityManager
}

// NewGameSession 创建处于菜单阶段的空会话
func NewGameSession() *GameSession {
	return &GameSession{
		Phase:         PhaseMenu,
		EntityManager: ecs.NewEntityManager(),
	}
}

// Reset 丢弃全部状态，恢复为刚创建时的菜单阶段
// 持有该会话指针的系统无需重新绑定
func (s *GameSession) Reset() {
	*s = *NewGameSession()
}

// IsRunning 是否处于进行中阶段
func (s *GameSession) IsRunning() bool {
	return s.Phase == PhaseRunning
}

// ButterflyIDs 按生成顺序返回场上的蝴蝶
func (s *GameSession) ButterflyIDs() []ecs.EntityID {
	return ecs.GetEntitiesWith3[
		*components.ButterflyComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.EntityManager)
}

// ButterflyCount 返回场上蝴蝶数量
func (s *GameSession) ButterflyCount() int {
	return len(s.ButterflyIDs())
}

// ClearButterflies 移除所有蝴蝶
func (s *GameSession) ClearButterflies() {
	s.EntityManager.Clear()
}
