package utils

import (
	"image/color"
	"testing"
)

// TestHSLToRGBA 对照 CSS hsl() 的标准换算结果
func TestHSLToRGBA(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    color.RGBA
	}{
		{"red", 0, 1, 0.5, color.RGBA{255, 0, 0, 255}},
		{"green", 120, 1, 0.5, color.RGBA{0, 255, 0, 255}},
		{"blue", 240, 1, 0.5, color.RGBA{0, 0, 255, 255}},
		{"white", 0, 0, 1, color.RGBA{255, 255, 255, 255}},
		{"black", 200, 0.8, 0, color.RGBA{0, 0, 0, 255}},
		{"gray", 90, 0, 0.5, color.RGBA{128, 128, 128, 255}},
		// 蝴蝶使用的 hsl(h, 80%, 60%)
		{"butterfly red", 0, 0.8, 0.6, color.RGBA{235, 71, 71, 255}},
		{"wraps 360", 360, 1, 0.5, color.RGBA{255, 0, 0, 255}},
		{"negative hue", -120, 1, 0.5, color.RGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLToRGBA(tt.h, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("HSLToRGBA(%v, %v, %v): got %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}
