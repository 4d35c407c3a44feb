package game

// Phase 游戏阶段
type Phase int

const (
	// PhaseMenu 开始菜单（初始阶段），场上没有蝴蝶
	PhaseMenu Phase = iota
	// PhaseRunning 游戏进行中，倒计时、生成、移动、点击均生效
	PhaseRunning
	// PhasePaused 暂停，所有定时回调变为空操作
	PhasePaused
	// PhaseEnded 倒计时归零后的结算阶段
	PhaseEnded
)

// String 返回阶段名称，便于日志输出
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
