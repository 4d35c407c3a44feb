package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/butterfly/pkg/app"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏参数 YAML 文件（默认使用内嵌配置）")
	fullscreen = flag.Bool("fullscreen", false, "以全屏模式启动")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已关闭，直接写 stderr
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
