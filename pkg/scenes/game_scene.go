package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/entities"
	"github.com/decker502/butterfly/pkg/game"
	"github.com/decker502/butterfly/pkg/modules"
	"github.com/decker502/butterfly/pkg/systems"
	"github.com/decker502/butterfly/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameScene 唯一的游戏场景
//
// 嵌入 StateShell 作为状态机的表现层：状态机只修改 ShellState，
// 场景每帧根据 ShellState 切换按钮可见性并绘制菜单、HUD 和结算面板。
// 按钮实体放在场景自己的 EntityManager 中，与会话里的蝴蝶分开。
type GameScene struct {
	*game.StateShell

	module *modules.SessionModule

	// UI 实体与系统
	uiEntityManager    *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	butterflyRender    *systems.ButterflyRenderSystem
	pointer            *utils.PointerTracker

	// 字体
	titleFont *text.GoTextFace
	menuFont  *text.GoTextFace
	hudFont   *text.GoTextFace

	// 按钮实体
	durationButtons []ecs.EntityID
	pauseButton     ecs.EntityID
	playButton      ecs.EntityID
	backGameButton  ecs.EntityID
	restartButton   ecs.EntityID
	backEndButton   ecs.EntityID

	width, height int
	showFPS       func() bool
}

// GameSceneOptions 创建 GameScene 的可选依赖
type GameSceneOptions struct {
	// Config 游戏参数，nil 时使用默认值
	Config *config.GameConfig
	// Rand 随机数源，nil 时按时间播种
	Rand *rand.Rand
	// ShowFPS 返回是否显示帧率，nil 时不显示
	ShowFPS func() bool
}

// NewGameScene 创建游戏场景并在调度器上注册状态机
//
// 参数:
//   - rm: 资源管理器（加载字体）
//   - scheduler: 驱动倒计时、生成和每帧运动的调度器
//   - opts: 可选依赖
//
// 返回:
//   - error: 字体加载失败
func NewGameScene(rm *game.ResourceManager, scheduler game.Scheduler, opts GameSceneOptions) (*GameScene, error) {
	scene := &GameScene{
		StateShell:      game.NewStateShell(),
		uiEntityManager: ecs.NewEntityManager(),
		pointer:         utils.NewPointerTracker(),
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
		showFPS:         opts.ShowFPS,
	}

	var err error
	if scene.titleFont, err = rm.LoadFont(config.TitleFontSize); err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	if scene.menuFont, err = rm.LoadFont(config.MenuFontSize); err != nil {
		return nil, fmt.Errorf("failed to load menu font: %w", err)
	}
	if scene.hudFont, err = rm.LoadFont(config.HUDFontSize); err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}

	scene.module = modules.NewSessionModule(scheduler, modules.SessionOptions{
		Config:     opts.Config,
		Rand:       opts.Rand,
		Shell:      scene.StateShell,
		CanvasSize: scene.canvasSize,
	})

	scene.buttonSystem = systems.NewButtonSystem(scene.uiEntityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.uiEntityManager)
	scene.butterflyRender = systems.NewButterflyRenderSystem(scene.module.Session())

	scene.createButtons()
	scene.layoutButtons()
	scene.syncButtons()

	log.Printf("[GameScene] Created with %d duration options", len(scene.durationButtons))
	return scene, nil
}

// createButtons 创建所有按钮实体（初始隐藏，由 syncButtons 控制显示）
func (s *GameScene) createButtons() {
	m := s.module
	for _, minutes := range m.Config().DurationOptions {
		minutes := minutes
		id := entities.NewButton(s.uiEntityManager, components.ButtonGroupMenu,
			0, 0, config.MenuButtonWidth, config.MenuButtonHeight,
			game.DurationLabel(minutes), s.menuFont, func() { m.SelectDuration(minutes) })
		s.durationButtons = append(s.durationButtons, id)
	}

	s.pauseButton = entities.NewButton(s.uiEntityManager, components.ButtonGroupHUD,
		0, 0, config.HUDButtonWidth, config.HUDButtonHeight, "Pause", s.hudFont, m.Pause)
	s.playButton = entities.NewButton(s.uiEntityManager, components.ButtonGroupHUD,
		0, 0, config.HUDButtonWidth, config.HUDButtonHeight, "Play", s.hudFont, m.Resume)
	s.backGameButton = entities.NewButton(s.uiEntityManager, components.ButtonGroupHUD,
		0, 0, config.HUDButtonWidth, config.HUDButtonHeight, "Menu", s.hudFont, m.ReturnToMenu)

	s.restartButton = entities.NewButton(s.uiEntityManager, components.ButtonGroupGameOver,
		0, 0, config.GameOverButtonWidth, config.HUDButtonHeight, "Play again", s.hudFont, m.RestartSameDuration)
	s.backEndButton = entities.NewButton(s.uiEntityManager, components.ButtonGroupGameOver,
		0, 0, config.GameOverButtonWidth, config.HUDButtonHeight, "Menu", s.hudFont, m.BackToMenuFromEnd)
}

// Update 处理输入并同步按钮状态
// 运动和定时器由调度器驱动，不在这里推进
func (s *GameScene) Update(deltaTime float64) {
	s.syncButtons()

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		s.handleKey(key)
	}
	s.handlePointer(s.pointer.Poll())

	s.syncButtons()
}

// handleKey 键盘快捷键
func (s *GameScene) handleKey(key ebiten.Key) {
	m := s.module
	switch key {
	case ebiten.KeyP, ebiten.KeySpace:
		m.TogglePause()
	case ebiten.KeyEscape:
		m.ReturnToMenu()
	case ebiten.KeyR:
		m.RestartSameDuration()
	case ebiten.KeyM:
		m.BackToMenuFromEnd()
	default:
		if key >= ebiten.KeyDigit1 && key <= ebiten.KeyDigit9 {
			index := int(key - ebiten.KeyDigit1)
			if options := m.Config().DurationOptions; index < len(options) {
				m.SelectDuration(options[index])
			}
		}
	}
}

// handlePointer 按钮在释放时触发；画布点击在按下时命中
func (s *GameScene) handlePointer(pointer utils.PointerFrame) {
	if s.buttonSystem.Update(pointer) {
		return
	}
	if !pointer.JustPressed {
		return
	}

	x, y := float64(pointer.X), float64(pointer.Y)
	if _, onButton := s.buttonSystem.ButtonAt(x, y); onButton {
		return
	}
	s.module.HandleClick(x, y)
}

// syncButtons 根据 ShellState 切换按钮可见性
func (s *GameScene) syncButtons() {
	st := s.State
	s.buttonSystem.SetGroupVisible(components.ButtonGroupMenu, st.MenuVisible)
	s.buttonSystem.SetVisible(s.pauseButton, st.HUDVisible && st.PauseVisible)
	s.buttonSystem.SetVisible(s.playButton, st.HUDVisible && st.PlayVisible)
	s.buttonSystem.SetVisible(s.backGameButton, st.HUDVisible && !st.GameOverVisible)
	s.buttonSystem.SetGroupVisible(components.ButtonGroupGameOver, st.GameOverVisible)
}

// OnResize 窗口尺寸变化时重新排列按钮
func (s *GameScene) OnResize(width, height int) {
	s.width, s.height = width, height
	s.layoutButtons()
}

// canvasSize 返回当前画布尺寸
func (s *GameScene) canvasSize() (float64, float64) {
	return float64(s.width), float64(s.height)
}

// Draw 绘制一帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.butterflyRender.Draw(screen)

	st := s.State
	if st.HUDVisible {
		s.drawHUD(screen)
	}
	if st.MenuVisible {
		s.drawMenu(screen)
	}
	if st.GameOverVisible {
		s.drawGameOver(screen)
	}

	s.buttonRenderSystem.Draw(screen)

	if s.showFPS != nil && s.showFPS() {
		s.drawFPS(screen)
	}
}
