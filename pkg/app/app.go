// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/embedded"
	"github.com/decker502/butterfly/pkg/game"
	"github.com/decker502/butterfly/pkg/scenes"
	"github.com/decker502/butterfly/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// settingsAppName gdata 存储目录名
	settingsAppName = "butterfly_catch"
	// embeddedConfigPath 内嵌默认配置
	embeddedConfigPath = "data/config/game.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部游戏配置文件，为空则使用内嵌默认配置
	ConfigPath string
	// Fullscreen 启动时强制全屏（不写入设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	scheduler                *game.TickScheduler
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 桌面端调用此函数前应先调用 embedded.Init()；未初始化时使用代码内的默认参数。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// Android 上 gdata 不会预先创建目录
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 设置存储打不开时降级为仅内存设置
	storage, err := game.OpenSettingsStorage(settingsAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settingsManager := game.NewSettingsManager(storage)
	// 移动端始终全屏，不处理窗口设置
	if !utils.IsMobile() && (cfg.Fullscreen || settingsManager.GetSettings().Fullscreen) {
		ebiten.SetFullscreen(true)
	}

	scheduler := game.NewTickScheduler()
	gameScene, err := scenes.NewGameScene(game.NewResourceManager(), scheduler, scenes.GameSceneOptions{
		Config: gameConfig,
		ShowFPS: func() bool {
			return settingsManager.GetSettings().ShowFPS
		},
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)
	log.Printf("[App] Started: maxButterflies=%d durations=%v", gameConfig.MaxButterflies, gameConfig.DurationOptions)

	return &App{
		sceneManager:    sceneManager,
		scheduler:       scheduler,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadGameConfig 按优先级加载游戏参数
//
//   - path 非空：读取外部文件，失败返回错误
//   - 否则读取内嵌的 data/config/game.yaml，失败时记录日志并使用默认值
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}

	if !embedded.IsInitialized() {
		log.Printf("[App] Embedded data not available, using built-in defaults")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(embeddedConfigPath)
	if err != nil {
		log.Printf("[App] Warning: %v (using built-in defaults)", err)
		return config.DefaultGameConfig(), nil
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		log.Printf("[App] Warning: embedded config invalid: %v (using built-in defaults)", err)
		return config.DefaultGameConfig(), nil
	}
	return gameConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F3 切换帧率显示
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		showFPS := a.settingsManager.ToggleShowFPS()
		log.Printf("[App] ShowFPS=%v", showFPS)
		a.saveSettings()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.DefaultTPS))

	// 先推进定时器，再推进一帧运动
	a.scheduler.Advance(time.Second / ebiten.DefaultTPS)
	a.scheduler.Frame()
	return nil
}

func (a *App) toggleFullscreen() {
	enter := !ebiten.IsFullscreen()
	if !enter {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(enter)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 画布尺寸跟随窗口尺寸
// 尺寸变化时通知场景重新排列按钮；蝴蝶按新的边界反弹
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
