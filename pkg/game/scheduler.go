package game

import (
	"log"
	"time"
)

// Scheduler 游戏核心依赖的调度能力
//
// 核心逻辑只通过此接口注册回调，不直接依赖 Ebitengine 的主循环，
// 因此测试可以用 TickScheduler 手动推进时间。
type Scheduler interface {
	// Every 注册固定间隔回调，注册后在进程生命周期内一直有效
	Every(name string, interval time.Duration, fn func()) *IntervalTimer
	// OnFrame 注册每帧回调
	OnFrame(fn func())
}

// IntervalTimer 固定间隔定时器
type IntervalTimer struct {
	Name     string        // 定时器名称，如 "countdown"
	Interval time.Duration // 触发间隔
	Fired    int           // 累计触发次数

	next time.Duration // 下一次触发的时间点（相对调度器起点）
	fn   func()
}

// TickScheduler 由宿主驱动的调度器
//
// 宿主每次更新时调用 Advance(dt) 推进墙钟时间，并在渲染一帧时调用 Frame()。
// 一次 Advance 跨越多个间隔时会按时间先后补齐所有触发；
// 同一时刻到期的多个定时器按注册顺序触发。
type TickScheduler struct {
	now      time.Duration
	timers   []*IntervalTimer
	frameFns []func()
}

// NewTickScheduler 创建调度器
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{
		timers:   make([]*IntervalTimer, 0, 2),
		frameFns: make([]func(), 0, 1),
	}
}

// Every 注册固定间隔回调
// interval 必须为正数，否则回调永远不会触发
func (s *TickScheduler) Every(name string, interval time.Duration, fn func()) *IntervalTimer {
	timer := &IntervalTimer{
		Name:     name,
		Interval: interval,
		next:     s.now + interval,
		fn:       fn,
	}
	if interval <= 0 {
		log.Printf("[Scheduler] Warning: timer %q has non-positive interval %v, it will never fire", name, interval)
	} else {
		s.timers = append(s.timers, timer)
	}
	return timer
}

// OnFrame 注册每帧回调
func (s *TickScheduler) OnFrame(fn func()) {
	s.frameFns = append(s.frameFns, fn)
}

// Now 返回调度器累计推进的时间
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// Advance 推进时间并触发所有到期的定时器
func (s *TickScheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.now += dt

	for {
		due := s.nextDue()
		if due == nil {
			return
		}
		due.next += due.Interval
		due.Fired++
		due.fn()
	}
}

// Frame 触发一次所有每帧回调
func (s *TickScheduler) Frame() {
	for _, fn := range s.frameFns {
		fn()
	}
}

// nextDue 返回最早到期的定时器，没有到期的返回 nil
func (s *TickScheduler) nextDue() *IntervalTimer {
	var due *IntervalTimer
	for _, timer := range s.timers {
		if timer.next > s.now {
			continue
		}
		// 严格小于：同一时刻保留先注册的
		if due == nil || timer.next < due.next {
			due = timer
		}
	}
	return due
}
