package utils

import "testing"

// TestPointInRect 边界点算作矩形内部
func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 60, 35, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 50, true},
		{"left of rect", 9.9, 35, false},
		{"below rect", 60, 50.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 10, 20, 100, 30); got != tt.want {
				t.Errorf("PointInRect(%v, %v): got %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

// TestNewPointerTracker 新建的追踪器没有残留触摸状态
func TestNewPointerTracker(t *testing.T) {
	p := NewPointerTracker()
	if p.touchActive {
		t.Error("new tracker should not have an active touch")
	}
	p.remember(12, 34)
	if !p.touchActive || p.lastTouchX != 12 || p.lastTouchY != 34 {
		t.Errorf("remember: got (%d, %d, %v)", p.lastTouchX, p.lastTouchY, p.touchActive)
	}
}
