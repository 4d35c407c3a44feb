package game

import "log"

// UIShell 核心逻辑通知表现层的接口
//
// 核心只在阶段切换、得分变化、倒计时变化时调用这些方法，
// 不关心菜单、HUD、结算面板具体如何显示。
type UIShell interface {
	ShowMenu()
	HideMenu()
	ShowHUD()
	HideHUD()
	// SetScoreText 更新得分显示
	SetScoreText(score int)
	// SetTimerText 更新倒计时显示，clock 形如 "1:05"
	SetTimerText(clock string)
	SetPauseButtonVisible(visible bool)
	SetPlayButtonVisible(visible bool)
	// ShowGameOver 显示结算面板
	ShowGameOver(finalScore int)
	HideGameOver()
}

// ShellState 表现层当前应显示的内容
// 各个前端（Ebitengine、终端、测试）共用这份状态，再各自绘制
type ShellState struct {
	MenuVisible     bool
	HUDVisible      bool
	ScoreText       string
	TimerText       string
	PauseVisible    bool
	PlayVisible     bool
	GameOverVisible bool
	FinalScoreText  string
}

// InitialShellState 返回程序刚启动时的界面状态
// 显示菜单，隐藏 HUD 和结算面板
func InitialShellState() ShellState {
	return ShellState{
		MenuVisible:    true,
		ScoreText:      ScoreText(0),
		TimerText:      TimerText(0),
		PauseVisible:   true,
		FinalScoreText: FinalScoreText(0),
	}
}

// StateShell 把 UIShell 调用记录为 ShellState
// 前端嵌入它，在绘制时读取 State
type StateShell struct {
	State ShellState
}

// NewStateShell 创建处于初始状态的 StateShell
func NewStateShell() *StateShell {
	return &StateShell{State: InitialShellState()}
}

// Reset 恢复到初始界面状态
func (s *StateShell) Reset() {
	s.State = InitialShellState()
}

func (s *StateShell) ShowMenu()                          { s.State.MenuVisible = true }
func (s *StateShell) HideMenu()                          { s.State.MenuVisible = false }
func (s *StateShell) ShowHUD()                           { s.State.HUDVisible = true }
func (s *StateShell) HideHUD()                           { s.State.HUDVisible = false }
func (s *StateShell) SetScoreText(score int)             { s.State.ScoreText = ScoreText(score) }
func (s *StateShell) SetTimerText(clock string)          { s.State.TimerText = timerPrefix + clock }
func (s *StateShell) SetPauseButtonVisible(visible bool) { s.State.PauseVisible = visible }
func (s *StateShell) SetPlayButtonVisible(visible bool)  { s.State.PlayVisible = visible }

func (s *StateShell) ShowGameOver(finalScore int) {
	s.State.FinalScoreText = FinalScoreText(finalScore)
	s.State.GameOverVisible = true
}

func (s *StateShell) HideGameOver() { s.State.GameOverVisible = false }

// LogShell 把每次界面通知写入日志，再转发给内部的 UIShell
// 用于命令行验证工具和调试
type LogShell struct {
	Next UIShell
}

func (s LogShell) ShowMenu() {
	log.Printf("[UI] ShowMenu")
	s.Next.ShowMenu()
}

func (s LogShell) HideMenu() {
	log.Printf("[UI] HideMenu")
	s.Next.HideMenu()
}

func (s LogShell) ShowHUD() {
	log.Printf("[UI] ShowHUD")
	s.Next.ShowHUD()
}

func (s LogShell) HideHUD() {
	log.Printf("[UI] HideHUD")
	s.Next.HideHUD()
}

func (s LogShell) SetScoreText(score int) {
	log.Printf("[UI] %s", ScoreText(score))
	s.Next.SetScoreText(score)
}

func (s LogShell) SetTimerText(clock string) {
	log.Printf("[UI] %s%s", timerPrefix, clock)
	s.Next.SetTimerText(clock)
}

func (s LogShell) SetPauseButtonVisible(visible bool) {
	log.Printf("[UI] pause button visible=%v", visible)
	s.Next.SetPauseButtonVisible(visible)
}

func (s LogShell) SetPlayButtonVisible(visible bool) {
	log.Printf("[UI] play button visible=%v", visible)
	s.Next.SetPlayButtonVisible(visible)
}

func (s LogShell) ShowGameOver(finalScore int) {
	log.Printf("[UI] ShowGameOver: %s", FinalScoreText(finalScore))
	s.Next.ShowGameOver(finalScore)
}

func (s LogShell) HideGameOver() {
	log.Printf("[UI] HideGameOver")
	s.Next.HideGameOver()
}
