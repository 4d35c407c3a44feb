package components

// VelocityComponent 存储实体的速度（像素/帧）
// 每渲染一帧位置累加一次速度，不乘以 deltaTime
type VelocityComponent struct {
	VX float64
	VY float64
}
