// verify_gameplay 无窗口验证一整局游戏
//
// 用假时钟驱动状态机：开局后模拟玩家按固定间隔点击最新的蝴蝶，
// 可选在中途暂停一段时间，结束后检查各项规则并输出结算结果。
//
// 用法：
//
//	go run ./cmd/verify_gameplay -duration 1 -click-every 2 -pause-at 10 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/game"
	"github.com/decker502/butterfly/pkg/modules"
)

const (
	framesPerSecond = 60
	canvasWidth     = config.GameWindowWidth
	canvasHeight    = config.GameWindowHeight
	pauseLength     = 5 // 暂停持续秒数
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息（包括每次界面通知）")
	duration   = flag.Int("duration", 1, "对局时长（分钟）")
	clickEvery = flag.Float64("click-every", 2, "模拟玩家每隔多少秒点击一次")
	pauseAt    = flag.Int("pause-at", 10, "在第几秒暂停 5 秒，0 表示不暂停")
	seed       = flag.Int64("seed", 1, "随机种子")
	configPath = flag.String("config", "", "游戏参数 YAML 文件（默认使用内置默认值）")
)

// verifier 驱动一局游戏并记录检查结果
type verifier struct {
	module    *modules.SessionModule
	scheduler *game.TickScheduler
	shell     *game.StateShell
	failures  []string
	frames    int
	maxSeen   int
}

func (v *verifier) failf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	v.failures = append(v.failures, msg)
	log.Printf("[Verify] FAIL: %s", msg)
}

// frame 推进一帧，每秒最后一帧补齐整除余量
func (v *verifier) frame() {
	step := time.Second / framesPerSecond
	if v.frames%framesPerSecond == framesPerSecond-1 {
		step = time.Second - (framesPerSecond-1)*step
	}
	v.frames++
	v.scheduler.Advance(step)
	v.scheduler.Frame()

	session := v.module.Session()
	if count := session.ButterflyCount(); count > v.maxSeen {
		v.maxSeen = count
	}
	if session.ButterflyCount() > v.module.Config().MaxButterflies {
		v.failf("population %d exceeds cap %d", session.ButterflyCount(), v.module.Config().MaxButterflies)
	}
}

// clickNewest 点击最新生成的蝴蝶
func (v *verifier) clickNewest() {
	session := v.module.Session()
	ids := session.ButterflyIDs()
	if len(ids) == 0 {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](session.EntityManager, ids[len(ids)-1])
	before := session.Score
	if !v.module.HandleClick(pos.X, pos.Y) {
		v.failf("click on butterfly %d at (%.1f, %.1f) missed", ids[len(ids)-1], pos.X, pos.Y)
		return
	}
	if session.Score != before+1 {
		v.failf("score went from %d to %d after one hit", before, session.Score)
	}
}

// pauseFor 暂停若干秒并检查状态冻结
func (v *verifier) pauseFor(seconds int) {
	session := v.module.Session()
	score, remaining, count := session.Score, session.TimeRemaining, session.ButterflyCount()

	v.module.Pause()
	for i := 0; i < seconds*framesPerSecond; i++ {
		v.frame()
	}
	if session.Score != score || session.TimeRemaining != remaining || session.ButterflyCount() != count {
		v.failf("state changed while paused: score %d->%d, time %d->%d, count %d->%d",
			score, session.Score, remaining, session.TimeRemaining, count, session.ButterflyCount())
	}
	v.module.Resume()
}

func loadConfig() *config.GameConfig {
	if *configPath == "" {
		return config.DefaultGameConfig()
	}
	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	shell := game.NewStateShell()
	scheduler := game.NewTickScheduler()
	module := modules.NewSessionModule(scheduler, modules.SessionOptions{
		Config: loadConfig(),
		Rand:   rand.New(rand.NewSource(*seed)),
		Shell:  game.LogShell{Next: shell},
		CanvasSize: func() (float64, float64) {
			return canvasWidth, canvasHeight
		},
	})
	v := &verifier{module: module, scheduler: scheduler, shell: shell}

	module.SelectDuration(*duration)
	if module.Phase() != game.PhaseRunning {
		fmt.Fprintf(os.Stderr, "无法开局：时长 %d 分钟无效\n", *duration)
		os.Exit(2)
	}

	clickFrames := int(*clickEvery * framesPerSecond)
	if clickFrames < 1 {
		clickFrames = 1
	}
	paused := false
	limit := (*duration*60 + pauseLength + 5) * framesPerSecond

	for module.Phase() != game.PhaseEnded && v.frames < limit {
		if !paused && *pauseAt > 0 && v.frames == *pauseAt*framesPerSecond {
			paused = true
			v.pauseFor(pauseLength)
			continue
		}
		if v.frames%clickFrames == 0 {
			v.clickNewest()
		}
		v.frame()
	}

	session := module.Session()
	if module.Phase() != game.PhaseEnded {
		v.failf("game did not end after %d frames", v.frames)
	}
	if session.TimeRemaining != 0 {
		v.failf("time remaining %d after the game ended", session.TimeRemaining)
	}
	if session.FinalScore != session.Score {
		v.failf("final score %d differs from score %d", session.FinalScore, session.Score)
	}
	want := game.FinalScoreText(session.Score)
	if shell.State.FinalScoreText != want || !shell.State.GameOverVisible {
		v.failf("game over panel shows %q (visible=%v), want %q", shell.State.FinalScoreText, shell.State.GameOverVisible, want)
	}

	fmt.Printf("duration:        %d min\n", *duration)
	fmt.Printf("simulated time:  %v\n", scheduler.Now())
	fmt.Printf("peak population: %d\n", v.maxSeen)
	fmt.Printf("%s\n", shell.State.FinalScoreText)

	if len(v.failures) > 0 {
		fmt.Printf("FAILED (%d checks)\n", len(v.failures))
		for _, f := range v.failures {
			fmt.Printf("  - %s\n", f)
		}
		os.Exit(1)
	}
	fmt.Println("OK")
}
