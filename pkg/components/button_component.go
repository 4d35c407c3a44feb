package components

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonGroup 按钮所属的界面层
// 场景根据当前显示的界面层决定哪些按钮可见
type ButtonGroup int

const (
	// ButtonGroupMenu 开始菜单上的时长选项
	ButtonGroupMenu ButtonGroup = iota
	// ButtonGroupHUD 游戏中右上角的控制按钮
	ButtonGroupHUD
	// ButtonGroupGameOver 结算面板上的按钮
	ButtonGroupGameOver
)

// ButtonComponent 按钮组件（ECS 架构）
// 矢量绘制的矩形按钮：纯色背景 + 居中文字
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 位置由 PositionComponent 提供（左上角）
//   - Visible=false 时既不绘制也不响应点击
type ButtonComponent struct {
	// Group 按钮所属界面层
	Group ButtonGroup
	// Label 按钮上显示的文字
	Label string
	// Font 文字字体
	Font *text.GoTextFace

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// State 当前交互状态
	State UIState
	// Visible 是否显示（隐藏的按钮不响应点击）
	Visible bool
	// Enabled 是否启用（禁用时显示但不响应点击）
	Enabled bool

	// OnClick 点击回调（在指针释放时触发）
	OnClick func()
}
