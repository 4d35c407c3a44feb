package modules

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/game"
	"github.com/decker502/butterfly/pkg/systems"
	"github.com/google/uuid"
)

// SessionModule 游戏状态机
// 封装一局游戏的全部规则，包括：
//   - 阶段切换（菜单 → 进行中 ⇄ 暂停 → 结束 → 菜单）
//   - 开局重置、暂停、返回菜单、再来一局
//   - 倒计时与生成定时器的回调
//   - 画布点击与每帧运动
//
// 对外只通过 UIShell 通知表现层，不依赖任何具体的绘制方式。
// 所有命令在条件不满足时静默忽略，不返回错误。
type SessionModule struct {
	cfg        *config.GameConfig
	rng        *rand.Rand
	shell      game.UIShell
	canvasSize func() (float64, float64)

	session *game.GameSession

	// 系统（与会话同生命周期）
	motionSystem    *systems.ButterflyMotionSystem
	spawnSystem     *systems.ButterflySpawnSystem
	hitTestSystem   *systems.HitTestSystem
	countdownSystem *systems.CountdownSystem

	countdownTimer *game.IntervalTimer
	spawnTimer     *game.IntervalTimer
}

// SessionOptions 创建 SessionModule 所需的依赖
type SessionOptions struct {
	// Config 游戏参数，nil 时使用默认值
	Config *config.GameConfig
	// Rand 随机数源，nil 时使用当前时间作为种子
	Rand *rand.Rand
	// Shell 表现层
	Shell game.UIShell
	// CanvasSize 返回当前画布尺寸，每次生成或移动时查询
	CanvasSize func() (width, height float64)
}

// NewSessionModule 创建状态机并在调度器上注册定时器和每帧回调
//
// 定时器在进程生命周期内一直有效；非进行中阶段时回调不产生任何效果。
func NewSessionModule(scheduler game.Scheduler, opts SessionOptions) *SessionModule {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	canvasSize := opts.CanvasSize
	if canvasSize == nil {
		canvasSize = func() (float64, float64) {
			return config.GameWindowWidth, config.GameWindowHeight
		}
	}

	m := &SessionModule{
		cfg:        cfg,
		rng:        rng,
		shell:      opts.Shell,
		canvasSize: canvasSize,
	}
	session := game.NewGameSession()
	m.session = session
	m.motionSystem = systems.NewButterflyMotionSystem(session)
	m.spawnSystem = systems.NewButterflySpawnSystem(session, cfg, rng)
	m.hitTestSystem = systems.NewHitTestSystem(session, cfg)
	m.countdownSystem = systems.NewCountdownSystem(session)

	m.countdownTimer = scheduler.Every("countdown", cfg.CountdownInterval(), m.onCountdownTick)
	m.spawnTimer = scheduler.Every("spawn", cfg.SpawnInterval(), m.onSpawnTick)
	scheduler.OnFrame(m.onFrame)

	log.Printf("[SessionModule] Initialized: countdown=%v spawn=%v", cfg.CountdownInterval(), cfg.SpawnInterval())
	return m
}

// Session 返回当前会话（只读使用）
func (m *SessionModule) Session() *game.GameSession {
	return m.session
}

// Phase 返回当前阶段
func (m *SessionModule) Phase() game.Phase {
	return m.session.Phase
}

// Config 返回游戏参数
func (m *SessionModule) Config() *config.GameConfig {
	return m.cfg
}

// SelectDuration 菜单选择时长（分钟）后开局
// 仅在菜单阶段有效
func (m *SessionModule) SelectDuration(minutes int) {
	if m.session.Phase != game.PhaseMenu {
		return
	}
	if minutes <= 0 {
		log.Printf("[SessionModule] Warning: ignoring non-positive duration %d", minutes)
		return
	}
	m.start(minutes * 60)
}

// start 以指定秒数开局
func (m *SessionModule) start(durationSeconds int) {
	s := m.session
	s.ClearButterflies()
	s.Score = 0
	s.TimeRemaining = durationSeconds
	s.SelectedDuration = durationSeconds
	s.FinalScore = 0
	s.Started = true
	s.Phase = game.PhaseRunning
	s.RunID = uuid.NewString()

	w, h := m.canvas()
	m.spawnSystem.SpawnInitial(w, h)

	m.shell.SetScoreText(0)
	m.shell.SetTimerText(game.FormatClock(durationSeconds))
	m.shell.HideMenu()
	m.shell.ShowHUD()
	m.shell.SetPauseButtonVisible(true)
	m.shell.SetPlayButtonVisible(false)
	m.shell.HideGameOver()

	log.Printf("[SessionModule] Run %s started: duration=%ds butterflies=%d", s.RunID, durationSeconds, s.ButterflyCount())
}

// Pause 暂停，仅在进行中阶段有效
func (m *SessionModule) Pause() {
	if m.session.Phase != game.PhaseRunning {
		return
	}
	m.session.Phase = game.PhasePaused
	m.shell.SetPauseButtonVisible(false)
	m.shell.SetPlayButtonVisible(true)
	log.Printf("[SessionModule] Run %s paused at %s", m.session.RunID, game.FormatClock(m.session.TimeRemaining))
}

// Resume 继续，仅在暂停阶段且本局已开始时有效
func (m *SessionModule) Resume() {
	if m.session.Phase != game.PhasePaused || !m.session.Started {
		return
	}
	m.session.Phase = game.PhaseRunning
	m.shell.SetPlayButtonVisible(false)
	m.shell.SetPauseButtonVisible(true)
	log.Printf("[SessionModule] Run %s resumed", m.session.RunID)
}

// TogglePause 在暂停与继续之间切换（键盘快捷键）
func (m *SessionModule) TogglePause() {
	switch m.session.Phase {
	case game.PhaseRunning:
		m.Pause()
	case game.PhasePaused:
		m.Resume()
	}
}

// ReturnToMenu 游戏中返回菜单
//
// 仅在进行中或暂停阶段有效。清空蝴蝶并重置 HUD 文字，
// 保留上次选择的时长。
func (m *SessionModule) ReturnToMenu() {
	s := m.session
	if s.Phase != game.PhaseRunning && s.Phase != game.PhasePaused {
		return
	}
	s.Phase = game.PhaseMenu
	s.Started = false
	s.ClearButterflies()

	m.shell.HideHUD()
	m.shell.ShowMenu()
	m.shell.SetScoreText(0)
	m.shell.SetTimerText(game.FormatClock(0))
	log.Printf("[SessionModule] Run %s abandoned, returned to menu (score was %d)", s.RunID, s.Score)
}

// RestartSameDuration 结算后以相同时长再来一局
func (m *SessionModule) RestartSameDuration() {
	if m.session.Phase != game.PhaseEnded {
		return
	}
	m.start(m.session.SelectedDuration)
}

// BackToMenuFromEnd 结算后返回菜单
// 整体重新初始化，不保留任何状态
func (m *SessionModule) BackToMenuFromEnd() {
	if m.session.Phase != game.PhaseEnded {
		return
	}
	m.Reinitialize()
}

// Reinitialize 丢弃当前会话的全部状态，恢复到程序刚启动时的样子
func (m *SessionModule) Reinitialize() {
	m.session.Reset()

	m.shell.HideGameOver()
	m.shell.HideHUD()
	m.shell.ShowMenu()
	m.shell.SetScoreText(0)
	m.shell.SetTimerText(game.FormatClock(0))
	m.shell.SetPauseButtonVisible(true)
	m.shell.SetPlayButtonVisible(false)
	log.Printf("[SessionModule] Reinitialized")
}

// HandleClick 画布点击，返回是否击中蝴蝶
func (m *SessionModule) HandleClick(x, y float64) bool {
	if !m.hitTestSystem.HandleClick(x, y) {
		return false
	}
	m.shell.SetScoreText(m.session.Score)
	return true
}

// onCountdownTick 每秒回调
func (m *SessionModule) onCountdownTick() {
	ticked, expired := m.countdownSystem.Tick()
	if !ticked {
		return
	}
	m.shell.SetTimerText(game.FormatClock(m.session.TimeRemaining))
	if expired {
		m.end()
	}
}

// end 倒计时归零，进入结算
func (m *SessionModule) end() {
	s := m.session
	s.Phase = game.PhaseEnded
	s.FinalScore = s.Score

	m.shell.SetPauseButtonVisible(false)
	m.shell.SetPlayButtonVisible(false)
	m.shell.ShowGameOver(s.FinalScore)
	log.Printf("[SessionModule] Run %s over: %s", s.RunID, game.FinalScoreText(s.FinalScore))
}

// onSpawnTick 生成定时器回调
func (m *SessionModule) onSpawnTick() {
	w, h := m.canvas()
	m.spawnSystem.Tick(w, h)
}

// canvas 返回兜底后的画布尺寸
func (m *SessionModule) canvas() (float64, float64) {
	return m.cfg.ClampCanvas(m.canvasSize())
}

// onFrame 每帧回调
func (m *SessionModule) onFrame() {
	w, h := m.canvas()
	m.motionSystem.Update(w, h)
}
