package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/utils"
)

// 蝴蝶颜色的饱和度与亮度，对应 hsl(h, 80%, 60%)
const (
	butterflySaturation = 0.8
	butterflyLightness  = 0.6
)

// ButterflyState 一只蝴蝶的初始状态（纯数据，不涉及 ECS）
type ButterflyState struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Hue    float64
}

// Speed 返回速度大小
func (b ButterflyState) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// RandomButterfly 随机生成一只蝴蝶的初始状态
//
// 采样规则：
//   - 位置：每个轴在 [size, dim-size) 内均匀分布
//   - 方向：[0, 2π) 内均匀分布
//   - 速度：[minSpeed, maxSpeed) 内均匀分布
//   - 色相：[0, 360) 内均匀分布
//
// 画布尺寸会先按 cfg 的最小值兜底，保证采样区间不为负。
func RandomButterfly(rng *rand.Rand, canvasWidth, canvasHeight float64, cfg *config.GameConfig) ButterflyState {
	w, h := cfg.ClampCanvas(canvasWidth, canvasHeight)
	size := cfg.ButterflySize

	angle := randRange(rng, 0, 2*math.Pi)
	speed := randRange(rng, cfg.MinSpeed, cfg.MaxSpeed)

	return ButterflyState{
		X:    randRange(rng, size, w-size),
		Y:    randRange(rng, size, h-size),
		VX:   math.Cos(angle) * speed,
		VY:   math.Sin(angle) * speed,
		Size: size,
		Hue:  randRange(rng, 0, 360),
	}
}

// NewButterflyEntity 随机生成一只蝴蝶并加入实体管理器
//
// 返回：
//   - ecs.EntityID: 新蝴蝶的实体ID
func NewButterflyEntity(em *ecs.EntityManager, rng *rand.Rand, canvasWidth, canvasHeight float64, cfg *config.GameConfig) ecs.EntityID {
	return AddButterfly(em, RandomButterfly(rng, canvasWidth, canvasHeight, cfg))
}

// AddButterfly 按给定状态创建蝴蝶实体
// 测试中用它摆放确定位置的蝴蝶
func AddButterfly(em *ecs.EntityManager, state ButterflyState) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: state.X,
		Y: state.Y,
	})
	ecs.AddComponent(em, entity, &components.VelocityComponent{
		VX: state.VX,
		VY: state.VY,
	})
	ecs.AddComponent(em, entity, &components.ButterflyComponent{
		Size:  state.Size,
		Hue:   state.Hue,
		Color: utils.HSLToRGBA(state.Hue, butterflySaturation, butterflyLightness),
	})

	return entity
}

// randRange 返回 [min, max) 内的均匀随机数；区间退化时返回 min
func randRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
