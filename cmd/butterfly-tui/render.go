package main

import (
	"fmt"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/game"
	"github.com/gdamore/tcell/v2"
)

var (
	styleCanvas = tcell.StyleDefault.Background(rgb(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B))
	styleBar    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleButton = tcell.StyleDefault.Background(rgb(config.ButtonColor.R, config.ButtonColor.G, config.ButtonColor.B)).Foreground(tcell.ColorWhite).Bold(true)
	stylePanel  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleTitle  = stylePanel.Bold(true)
)

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// render 绘制一帧并重建可点击区域
func (t *tui) render() {
	t.regions = t.regions[:0]
	t.screen.Clear()

	cols, rows := t.view.cols, t.view.rows
	for row := hudRows; row < hudRows+t.view.canvasRows(); row++ {
		t.fill(0, row, cols, styleCanvas)
	}

	t.drawButterflies()

	st := t.shell.State
	t.fill(0, 0, cols, styleBar)
	if st.HUDVisible {
		t.drawHUD()
	}
	if st.MenuVisible {
		t.drawMenu()
	}
	if st.GameOverVisible {
		t.drawGameOver()
	}

	if rows > hudRows {
		t.fill(0, rows-1, cols, styleBar)
		t.print(1, rows-1, styleBar, "1-9 start  P/Space pause  Esc menu  R restart  M back  Q quit")
	}
	t.screen.Show()
}

// drawButterflies 每只蝴蝶画成两格 "}{"，第二片翅膀右移一格（8 像素，接近 10 像素的偏移）
func (t *tui) drawButterflies() {
	session := t.module.Session()
	em := session.EntityManager
	for _, id := range session.ButterflyIDs() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		butterfly, _ := ecs.GetComponent[*components.ButterflyComponent](em, id)

		col, row, ok := t.view.canvasToCell(pos.X, pos.Y)
		if !ok {
			continue
		}
		style := styleCanvas.Foreground(rgb(butterfly.Color.R, butterfly.Color.G, butterfly.Color.B)).Bold(true)
		t.screen.SetContent(col, row, '}', nil, style)
		if col+1 < t.view.cols {
			t.screen.SetContent(col+1, row, '{', nil, style)
		}
	}
}

func (t *tui) drawHUD() {
	st := t.shell.State
	t.print(1, 0, styleBar, fmt.Sprintf("%s   %s", st.ScoreText, st.TimerText))

	col := t.view.cols - 1
	col = t.button(col, 0, " Menu ", t.module.ReturnToMenu, !st.GameOverVisible)
	col = t.button(col-1, 0, " Play ", t.module.Resume, st.PlayVisible)
	t.button(col-1, 0, " Pause ", t.module.Pause, st.PauseVisible)
}

// button 右对齐绘制按钮并登记点击区域，返回按钮左边界
func (t *tui) button(right, row int, label string, action func(), visible bool) int {
	if !visible {
		return right + 1
	}
	left := right - len(label) + 1
	t.print(left, row, styleButton, label)
	t.regions = append(t.regions, region{row: row, col0: left, col1: right + 1, action: action})
	return left
}

func (t *tui) drawMenu() {
	options := t.module.Config().DurationOptions
	lines := 3 + len(options)
	top := hudRows + (t.view.canvasRows()-lines)/2
	width := 28

	left := (t.view.cols - width) / 2
	for i := 0; i < lines; i++ {
		t.fill(left, top+i, width, stylePanel)
	}
	t.center(top, styleTitle, config.GameWindowTitle)
	t.center(top+1, stylePanel, "Choose a duration")

	for i, minutes := range options {
		minutes := minutes
		label := fmt.Sprintf(" [%d] %s ", i+1, game.DurationLabel(minutes))
		row := top + 3 + i
		col := t.center(row, styleButton, label)
		t.regions = append(t.regions, region{row: row, col0: col, col1: col + len(label), action: func() {
			t.module.SelectDuration(minutes)
		}})
	}
}

func (t *tui) drawGameOver() {
	top := hudRows + (t.view.canvasRows()-5)/2
	width := 30
	left := (t.view.cols - width) / 2
	for i := 0; i < 5; i++ {
		t.fill(left, top+i, width, stylePanel)
	}
	t.center(top, styleTitle, "Game Over")
	t.center(top+1, stylePanel, t.shell.State.FinalScoreText)

	restart := " [R] Play again "
	back := " [M] Menu "
	row := top + 3
	col := (t.view.cols - len(restart) - len(back) - 2) / 2
	t.print(col, row, styleButton, restart)
	t.regions = append(t.regions, region{row: row, col0: col, col1: col + len(restart), action: t.module.RestartSameDuration})
	col += len(restart) + 2
	t.print(col, row, styleButton, back)
	t.regions = append(t.regions, region{row: row, col0: col, col1: col + len(back), action: t.module.BackToMenuFromEnd})
}

// center 水平居中打印，返回起始列
func (t *tui) center(row int, style tcell.Style, s string) int {
	col := (t.view.cols - len(s)) / 2
	t.print(col, row, style, s)
	return col
}

func (t *tui) print(col, row int, style tcell.Style, s string) {
	for _, r := range s {
		if col >= 0 && col < t.view.cols {
			t.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

func (t *tui) fill(col, row, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		t.screen.SetContent(col+i, row, ' ', nil, style)
	}
}
