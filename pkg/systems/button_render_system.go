package systems

import (
	"image/color"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有可见的按钮实体
//
// 职责：
//   - 渲染按钮背景和边框（根据状态选择颜色）
//   - 渲染按钮文字（自动居中，带阴影）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, entityID := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
// 用于需要精确控制渲染顺序的场景（如结算面板上的按钮）
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || !button.Visible {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)
	vector.DrawFilledRect(screen, x, y, w, h, ButtonFillColor(button.State), true)
	vector.StrokeRect(screen, x, y, w, h, config.ButtonBorderThickness, config.ButtonBorderColor, true)

	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// ButtonFillColor 返回按钮状态对应的背景色
func ButtonFillColor(state components.UIState) color.RGBA {
	switch state {
	case components.UIHovered:
		return config.ButtonHoverColor
	case components.UIClicked:
		return config.ButtonPressedColor
	case components.UIDisabled:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	default:
		return config.ButtonColor
	}
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Label == "" || button.Font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+1.5, centerY+1.5)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 160})
	text.Draw(screen, button.Label, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(config.LightTextColor)
	text.Draw(screen, button.Label, button.Font, op)
}
