package config

import "image/color"

// 布局配置常量
// 本文件定义了窗口、HUD、菜单和结算面板的布局参数

// 窗口配置
const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 960
	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 640
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Butterfly Catch"
)

// 蝴蝶绘制参数（两片旋转 ±45° 的椭圆翅膀）
const (
	// WingRadiusX 翅膀椭圆长半轴
	WingRadiusX = 20.0
	// WingRadiusY 翅膀椭圆短半轴
	WingRadiusY = 10.0
	// WingOffsetX 第二片翅膀相对第一片的水平偏移
	WingOffsetX = 10.0
	// WingSegments 椭圆近似多边形的边数
	WingSegments = 24
	// WingFlapSpeed 翅膀扇动速度（弧度/帧），纯装饰
	WingFlapSpeed = 0.25
	// WingFlapAmount 扇动时短半轴的缩放幅度
	WingFlapAmount = 0.25
)

// HUD 布局
const (
	HUDMargin      = 16.0
	HUDFontSize    = 22.0
	HUDLineSpacing = 30.0

	// HUD 右上角按钮（暂停/继续、返回菜单）
	HUDButtonWidth   = 110.0
	HUDButtonHeight  = 36.0
	HUDButtonSpacing = 10.0
)

// 菜单与结算面板布局
const (
	TitleFontSize       = 48.0
	MenuFontSize        = 24.0
	MenuButtonWidth     = 220.0
	MenuButtonHeight    = 48.0
	MenuButtonSpacing   = 16.0
	MenuTitleOffsetY    = 140.0
	GameOverPanelWidth  = 360.0
	GameOverPanelHeight = 240.0
	GameOverButtonWidth = 140.0
)

// 颜色配置
var (
	BackgroundColor       = color.RGBA{R: 186, G: 228, B: 255, A: 255}
	OverlayColor          = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	PanelColor            = color.RGBA{R: 255, G: 255, B: 255, A: 235}
	TextColor             = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	LightTextColor        = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	ButtonColor           = color.RGBA{R: 90, G: 140, B: 230, A: 255}
	ButtonHoverColor      = color.RGBA{R: 110, G: 160, B: 245, A: 255}
	ButtonPressedColor    = color.RGBA{R: 60, G: 105, B: 190, A: 255}
	ButtonBorderColor     = color.RGBA{R: 40, G: 60, B: 120, A: 255}
	ButtonBorderThickness = float32(2)
)
