package utils

import (
	"image/color"
	"math"
)

// HSLToRGBA 将 HSL 颜色转换为 RGBA
//
// 参数：
//   - h: 色相（度），任意实数，会被折算到 [0, 360)
//   - s: 饱和度 [0, 1]
//   - l: 亮度 [0, 1]
//
// 返回：
//   - color.RGBA: 不透明颜色
func HSLToRGBA(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	// CSS Color Module Level 3 的换算公式
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return color.RGBA{
		R: toByte(r + m),
		G: toByte(g + m),
		B: toByte(b + m),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
