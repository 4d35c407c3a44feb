package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
)

// TestRandomButterflyRanges 大量采样验证位置、速度、色相的取值范围
func TestRandomButterflyRanges(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(1))
	const w, h = 800.0, 600.0

	for i := 0; i < 2000; i++ {
		b := RandomButterfly(rng, w, h, cfg)

		if b.X < cfg.ButterflySize || b.X >= w-cfg.ButterflySize {
			t.Fatalf("sample %d: X=%v outside [%v, %v)", i, b.X, cfg.ButterflySize, w-cfg.ButterflySize)
		}
		if b.Y < cfg.ButterflySize || b.Y >= h-cfg.ButterflySize {
			t.Fatalf("sample %d: Y=%v outside [%v, %v)", i, b.Y, cfg.ButterflySize, h-cfg.ButterflySize)
		}
		// 浮点误差：cos/sin 重新合成的速度可能有极小偏差
		speed := b.Speed()
		if speed < cfg.MinSpeed-1e-9 || speed >= cfg.MaxSpeed+1e-9 {
			t.Fatalf("sample %d: speed=%v outside [%v, %v)", i, speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
		if b.Hue < 0 || b.Hue >= 360 {
			t.Fatalf("sample %d: hue=%v outside [0, 360)", i, b.Hue)
		}
		if b.Size != cfg.ButterflySize {
			t.Fatalf("sample %d: size=%v, want %v", i, b.Size, cfg.ButterflySize)
		}
	}
}

// TestRandomButterflyDirections 方向覆盖整个圆周（四个象限都出现）
func TestRandomButterflyDirections(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(7))

	quadrants := map[[2]bool]int{}
	for i := 0; i < 400; i++ {
		b := RandomButterfly(rng, 800, 600, cfg)
		quadrants[[2]bool{b.VX >= 0, b.VY >= 0}]++
	}
	if len(quadrants) != 4 {
		t.Errorf("expected velocities in all four quadrants, got %v", quadrants)
	}
}

// TestRandomButterflyDegenerateCanvas 过小的画布不会产生负区间
func TestRandomButterflyDegenerateCanvas(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(3))

	for _, dims := range [][2]float64{{0, 0}, {-10, 40}, {99, 99}} {
		b := RandomButterfly(rng, dims[0], dims[1], cfg)
		// 最小画布 100x100、尺寸 50 时区间退化为单点 50
		if b.X != 50 || b.Y != 50 {
			t.Errorf("canvas %v: got position (%v, %v), want (50, 50)", dims, b.X, b.Y)
		}
		if math.IsNaN(b.VX) || math.IsNaN(b.VY) {
			t.Errorf("canvas %v: velocity is NaN", dims)
		}
	}
}

// TestNewButterflyEntity 创建的实体带齐三个组件
func TestNewButterflyEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(11))

	id := NewButterflyEntity(em, rng, 640, 480, cfg)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("PositionComponent missing")
	}
	if pos.X < 50 || pos.X >= 590 || pos.Y < 50 || pos.Y >= 430 {
		t.Errorf("position out of range: (%v, %v)", pos.X, pos.Y)
	}
	if _, ok := ecs.GetComponent[*components.VelocityComponent](em, id); !ok {
		t.Error("VelocityComponent missing")
	}
	bf, ok := ecs.GetComponent[*components.ButterflyComponent](em, id)
	if !ok {
		t.Fatal("ButterflyComponent missing")
	}
	if bf.Color.A != 255 {
		t.Errorf("butterfly colour should be opaque, got alpha %d", bf.Color.A)
	}
}

// TestAddButterflyKeepsState 指定状态原样写入组件
func TestAddButterflyKeepsState(t *testing.T) {
	em := ecs.NewEntityManager()
	id := AddButterfly(em, ButterflyState{X: 10, Y: 20, VX: 2, VY: -3, Size: 50, Hue: 120})

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if pos.X != 10 || pos.Y != 20 || vel.VX != 2 || vel.VY != -3 {
		t.Errorf("state mismatch: pos=%+v vel=%+v", *pos, *vel)
	}
}
