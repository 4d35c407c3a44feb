// butterfly-tui 终端版捉蝴蝶
//
// 与图形版共用同一个状态机，只是换成 tcell 绘制：
// 蝴蝶显示为彩色的 "}{"，鼠标点击格子即点击对应的画布位置。
//
// 用法：
//
//	go run ./cmd/butterfly-tui -log /tmp/butterfly.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/game"
	"github.com/decker502/butterfly/pkg/modules"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = time.Second / 60

var (
	logPath    = flag.String("log", "", "日志文件路径（终端界面下日志不能写到屏幕）")
	configPath = flag.String("config", "", "游戏参数 YAML 文件（默认使用内置默认值）")
)

// region 可点击的文字区域（菜单项、HUD 按钮）
type region struct {
	row, col0, col1 int
	action          func()
}

// tui 终端前端
type tui struct {
	screen    tcell.Screen
	module    *modules.SessionModule
	scheduler *game.TickScheduler
	shell     *game.StateShell
	view      viewport
	regions   []region
	mouseDown bool
	quit      bool
}

func newTUI(screen tcell.Screen, cfg *config.GameConfig, shell game.UIShell, state *game.StateShell) *tui {
	t := &tui{
		screen:    screen,
		scheduler: game.NewTickScheduler(),
		shell:     state,
	}
	t.view.cols, t.view.rows = screen.Size()
	t.module = modules.NewSessionModule(t.scheduler, modules.SessionOptions{
		Config:     cfg,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Shell:      shell,
		CanvasSize: func() (float64, float64) {
			return t.view.canvasSize()
		},
	})
	return t
}

// handleEvent 处理一个 tcell 事件
func (t *tui) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.view.cols, t.view.rows = ev.Size()
		log.Printf("[TUI] Resized to %dx%d cells", t.view.cols, t.view.rows)
		t.screen.Sync()
	case *tcell.EventKey:
		t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		// 按住拖动会持续产生事件，只在按下的那一刻点击
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !t.mouseDown {
			col, row := ev.Position()
			t.handleClick(col, row)
		}
		t.mouseDown = pressed
	}
}

// handleKey 快捷键与图形版一致，另加 Q 退出
func (t *tui) handleKey(key tcell.Key, r rune) {
	m := t.module
	switch key {
	case tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyEscape:
		m.ReturnToMenu()
	case tcell.KeyRune:
		switch {
		case r == 'q':
			t.quit = true
		case r == 'p' || r == ' ':
			m.TogglePause()
		case r == 'r':
			m.RestartSameDuration()
		case r == 'm':
			m.BackToMenuFromEnd()
		case r >= '1' && r <= '9':
			if options := m.Config().DurationOptions; int(r-'1') < len(options) {
				m.SelectDuration(options[r-'1'])
			}
		}
	}
}

// handleClick 先匹配文字区域，否则作为画布点击
func (t *tui) handleClick(col, row int) {
	for _, r := range t.regions {
		if r.row == row && col >= r.col0 && col < r.col1 {
			r.action()
			return
		}
	}
	if x, y, ok := t.view.cellToCanvas(col, row); ok {
		t.module.HandleClick(x, y)
	}
}

// run 主循环：事件与帧定时器都在同一个 goroutine 中处理
func (t *tui) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for !t.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			t.handleEvent(ev)
		case now := <-ticker.C:
			t.scheduler.Advance(now.Sub(last))
			last = now
			t.scheduler.Frame()
			t.render()
		}
	}
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法创建终端屏幕: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "无法初始化终端: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	state := game.NewStateShell()
	t := newTUI(screen, cfg, game.LogShell{Next: state}, state)
	t.run()

	screen.Fini()
}
