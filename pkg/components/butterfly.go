package components

import "image/color"

// ButterflyComponent 标记实体为一只蝴蝶，并保存其显示属性
//
// 只有 Size 参与逻辑（生成边距）；命中半径是独立的全局配置。
// Hue/Color/WingPhase 只影响渲染。
type ButterflyComponent struct {
	Size      float64    // 尺寸（像素），生成时与画布边缘保持的距离
	Hue       float64    // 色相 [0, 360)
	Color     color.RGBA // 由 hsl(Hue, 80%, 60%) 换算
	WingPhase float64    // 翅膀扇动相位（弧度）
}
