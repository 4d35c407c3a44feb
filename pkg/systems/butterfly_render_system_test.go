package systems

import (
	"math"
	"testing"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestEllipsePoints 旋转椭圆顶点
func TestEllipsePoints(t *testing.T) {
	points := EllipsePoints(100, 50, 20, 10, 0, 4)
	want := [][2]float64{{120, 50}, {100, 60}, {80, 50}, {100, 40}}
	for i := range want {
		if !approxEqual(points[i][0], want[i][0]) || !approxEqual(points[i][1], want[i][1]) {
			t.Errorf("point %d: got %v, want %v", i, points[i], want[i])
		}
	}

	rotated := EllipsePoints(0, 0, 20, 10, math.Pi/4, 4)
	d := 20 * math.Sqrt2 / 2
	if !approxEqual(rotated[0][0], d) || !approxEqual(rotated[0][1], d) {
		t.Errorf("rotated major axis: got %v, want (%v, %v)", rotated[0], d, d)
	}

	if got := len(EllipsePoints(0, 0, 1, 1, 0, 1)); got != 3 {
		t.Errorf("segments clamp: got %d points, want 3", got)
	}
}

// TestWingRadiusY 扇动幅度在 [1-amount, 1] 倍之间
func TestWingRadiusY(t *testing.T) {
	if got := WingRadiusY(-math.Pi / 2); !approxEqual(got, config.WingRadiusY) {
		t.Errorf("open wing: got %v, want %v", got, config.WingRadiusY)
	}
	want := config.WingRadiusY * (1 - config.WingFlapAmount)
	if got := WingRadiusY(math.Pi / 2); !approxEqual(got, want) {
		t.Errorf("closed wing: got %v, want %v", got, want)
	}
}

// TestButtonFillColor 状态对应的背景色
func TestButtonFillColor(t *testing.T) {
	if ButtonFillColor(components.UINormal) != config.ButtonColor {
		t.Error("normal state should use ButtonColor")
	}
	if ButtonFillColor(components.UIHovered) != config.ButtonHoverColor {
		t.Error("hovered state should use ButtonHoverColor")
	}
	if ButtonFillColor(components.UIClicked) != config.ButtonPressedColor {
		t.Error("clicked state should use ButtonPressedColor")
	}
}
