package components

// PositionComponent 存储实体在画布上的位置（像素坐标）
// 对蝴蝶而言是身体中心；对按钮而言是左上角
type PositionComponent struct {
	X float64
	Y float64
}
