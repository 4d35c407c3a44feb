// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerFrame 存储当前帧的指针输入状态
// 用于统一处理鼠标和触摸输入
type PointerFrame struct {
	// X, Y 当前指针位置（触摸结束时为最后一次触摸位置）
	X, Y int
	// Pressed 指针是否处于按下状态
	Pressed bool
	// JustPressed 本帧刚按下
	JustPressed bool
	// JustReleased 本帧刚释放
	JustReleased bool
	// IsTouch 本帧输入来自触摸
	IsTouch bool
}

// PointerTracker 统一鼠标与触摸输入
//
// 触摸释放的那一帧已经拿不到触摸坐标，因此需要记住最后一次触摸位置。
// 每帧调用一次 Poll()。
type PointerTracker struct {
	lastTouchX, lastTouchY int
	touchActive            bool
}

// NewPointerTracker 创建指针追踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Poll 读取本帧的指针状态，优先检测触摸
func (p *PointerTracker) Poll() PointerFrame {
	frame := PointerFrame{}

	// 首先检查触摸输入（移动设备）
	if justPressed := inpututil.AppendJustPressedTouchIDs(nil); len(justPressed) > 0 {
		frame.X, frame.Y = ebiten.TouchPosition(justPressed[0])
		frame.JustPressed = true
		frame.Pressed = true
		frame.IsTouch = true
		p.remember(frame.X, frame.Y)
		return frame
	}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		frame.X, frame.Y = ebiten.TouchPosition(touchIDs[0])
		frame.Pressed = true
		frame.IsTouch = true
		p.remember(frame.X, frame.Y)
		return frame
	}

	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 || p.touchActive {
		// 触摸释放时使用保存的最后触摸位置
		frame.X, frame.Y = p.lastTouchX, p.lastTouchY
		frame.JustReleased = len(released) > 0
		frame.IsTouch = true
		p.touchActive = false
		return frame
	}

	// 其次检查鼠标输入（桌面设备）
	frame.X, frame.Y = ebiten.CursorPosition()
	frame.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	frame.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}

func (p *PointerTracker) remember(x, y int) {
	p.lastTouchX, p.lastTouchY = x, y
	p.touchActive = true
}

// PointInRect 判断点是否落在矩形内（含边界）
func PointInRect(px, py, x, y, width, height float64) bool {
	return px >= x &&
		px <= x+width &&
		py >= y &&
		py <= y+height
}
