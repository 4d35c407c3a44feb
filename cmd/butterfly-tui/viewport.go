package main

// 终端字符格与画布像素的换算
// 一个字符格对应 8×16 画布像素；第一行是 HUD，最后一行是按键提示
const (
	cellWidth  = 8
	cellHeight = 16
	hudRows    = 1
	footerRows = 1
)

// viewport 当前终端尺寸（字符格）
type viewport struct {
	cols, rows int
}

// canvasRows 画布占用的行数
func (v viewport) canvasRows() int {
	rows := v.rows - hudRows - footerRows
	if rows < 0 {
		return 0
	}
	return rows
}

// canvasSize 返回画布像素尺寸
func (v viewport) canvasSize() (float64, float64) {
	return float64(v.cols * cellWidth), float64(v.canvasRows() * cellHeight)
}

// cellToCanvas 把字符格换算为画布像素（取格子中心）
// 点在 HUD 或提示行上时返回 false
func (v viewport) cellToCanvas(col, row int) (float64, float64, bool) {
	canvasRow := row - hudRows
	if col < 0 || col >= v.cols || canvasRow < 0 || canvasRow >= v.canvasRows() {
		return 0, 0, false
	}
	return float64(col*cellWidth + cellWidth/2), float64(canvasRow*cellHeight + cellHeight/2), true
}

// canvasToCell 把画布像素换算为字符格
// 蝴蝶越界反弹时可能短暂位于画布外，此时返回 false
func (v viewport) canvasToCell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col := int(x) / cellWidth
	canvasRow := int(y) / cellHeight
	if col >= v.cols || canvasRow >= v.canvasRows() {
		return 0, 0, false
	}
	return col, canvasRow + hudRows, true
}
