package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	menuSubtitle   = "Choose a duration"
	gameOverTitle  = "Game Over"
	fpsTextOffsetX = 100
	fpsTextOffsetY = 20
)

// layoutButtons 按当前窗口尺寸排列按钮
//
//   - 时长按钮：屏幕中央竖排
//   - HUD 按钮：右上角，暂停/继续共用一个位置
//   - 结算按钮：结算面板底部并排
func (s *GameScene) layoutButtons() {
	w, h := float64(s.width), float64(s.height)

	count := float64(len(s.durationButtons))
	columnHeight := count*config.MenuButtonHeight + (count-1)*config.MenuButtonSpacing
	menuX := (w - config.MenuButtonWidth) / 2
	menuY := (h - columnHeight) / 2
	for i, id := range s.durationButtons {
		s.moveButton(id, menuX, menuY+float64(i)*(config.MenuButtonHeight+config.MenuButtonSpacing))
	}

	backX := w - config.HUDMargin - config.HUDButtonWidth
	toggleX := backX - config.HUDButtonSpacing - config.HUDButtonWidth
	s.moveButton(s.pauseButton, toggleX, config.HUDMargin)
	s.moveButton(s.playButton, toggleX, config.HUDMargin)
	s.moveButton(s.backGameButton, backX, config.HUDMargin)

	panelX, panelY := s.gameOverPanelOrigin()
	buttonY := panelY + config.GameOverPanelHeight - config.HUDMargin - config.HUDButtonHeight
	centerX := panelX + config.GameOverPanelWidth/2
	s.moveButton(s.restartButton, centerX-config.HUDButtonSpacing/2-config.GameOverButtonWidth, buttonY)
	s.moveButton(s.backEndButton, centerX+config.HUDButtonSpacing/2, buttonY)
}

func (s *GameScene) moveButton(id ecs.EntityID, x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.uiEntityManager, id); ok {
		pos.X, pos.Y = x, y
	}
}

// gameOverPanelOrigin 返回结算面板左上角
func (s *GameScene) gameOverPanelOrigin() (float64, float64) {
	return (float64(s.width) - config.GameOverPanelWidth) / 2,
		(float64(s.height) - config.GameOverPanelHeight) / 2
}

// drawHUD 左上角的得分和倒计时
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	drawTextAt(screen, s.State.ScoreText, s.hudFont, config.HUDMargin, config.HUDMargin, config.TextColor, text.AlignStart)
	drawTextAt(screen, s.State.TimerText, s.hudFont, config.HUDMargin, config.HUDMargin+config.HUDLineSpacing, config.TextColor, text.AlignStart)
}

// drawMenu 半透明遮罩 + 标题
func (s *GameScene) drawMenu(screen *ebiten.Image) {
	w, h := float64(s.width), float64(s.height)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	titleY := h/2 - config.MenuTitleOffsetY - float64(len(s.durationButtons))*config.MenuButtonHeight/2
	drawTextAt(screen, config.GameWindowTitle, s.titleFont, w/2, titleY, config.LightTextColor, text.AlignCenter)
	drawTextAt(screen, menuSubtitle, s.menuFont, w/2, titleY+config.TitleFontSize+config.MenuButtonSpacing, config.LightTextColor, text.AlignCenter)
}

// drawGameOver 遮罩 + 结算面板
func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), config.OverlayColor, false)

	x, y := s.gameOverPanelOrigin()
	vector.DrawFilledRect(screen, float32(x), float32(y), config.GameOverPanelWidth, config.GameOverPanelHeight, config.PanelColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), config.GameOverPanelWidth, config.GameOverPanelHeight, config.ButtonBorderThickness, config.ButtonBorderColor, true)

	centerX := x + config.GameOverPanelWidth/2
	drawTextAt(screen, gameOverTitle, s.titleFont, centerX, y+config.HUDMargin, config.TextColor, text.AlignCenter)
	drawTextAt(screen, s.State.FinalScoreText, s.menuFont, centerX, y+config.HUDMargin*2+config.TitleFontSize, config.TextColor, text.AlignCenter)
}

// drawFPS 右下角帧率
func (s *GameScene) drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), s.width-fpsTextOffsetX, s.height-fpsTextOffsetY)
}

func drawTextAt(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
