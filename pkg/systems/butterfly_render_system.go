package systems

import (
	"image/color"
	"math"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButterflyRenderSystem 绘制场上的蝴蝶
//
// 每只蝴蝶由两片椭圆翅膀组成：第一片以中心为圆心旋转 +45°，
// 第二片右移 WingOffsetX 并旋转 -45°。椭圆用多边形近似后填充。
type ButterflyRenderSystem struct {
	session *game.GameSession

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

// NewButterflyRenderSystem 创建蝴蝶渲染系统
func NewButterflyRenderSystem(session *game.GameSession) *ButterflyRenderSystem {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &ButterflyRenderSystem{
		session: session,
		fillImg: fillImg,
	}
}

// Draw 按生成顺序绘制所有蝴蝶（后生成的在上层）
func (s *ButterflyRenderSystem) Draw(screen *ebiten.Image) {
	em := s.session.EntityManager
	for _, id := range s.session.ButterflyIDs() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		butterfly, _ := ecs.GetComponent[*components.ButterflyComponent](em, id)

		ry := WingRadiusY(butterfly.WingPhase)
		s.fillPolygon(screen, EllipsePoints(pos.X, pos.Y, config.WingRadiusX, ry, math.Pi/4, config.WingSegments), butterfly.Color)
		s.fillPolygon(screen, EllipsePoints(pos.X+config.WingOffsetX, pos.Y, config.WingRadiusX, ry, -math.Pi/4, config.WingSegments), butterfly.Color)
	}
}

// WingRadiusY 返回扇动相位对应的翅膀短半轴
func WingRadiusY(phase float64) float64 {
	flap := 0.5 + 0.5*math.Sin(phase)
	return config.WingRadiusY * (1 - config.WingFlapAmount*flap)
}

// EllipsePoints 返回旋转椭圆的多边形顶点
//
// 参数:
//   - cx, cy: 椭圆中心
//   - rx, ry: 半轴长度
//   - rotation: 旋转角（弧度，顺时针为正，与屏幕坐标一致）
//   - segments: 边数，小于 3 时按 3 处理
func EllipsePoints(cx, cy, rx, ry, rotation float64, segments int) [][2]float64 {
	if segments < 3 {
		segments = 3
	}
	cosR, sinR := math.Cos(rotation), math.Sin(rotation)

	points := make([][2]float64, segments)
	for i := range points {
		t := 2 * math.Pi * float64(i) / float64(segments)
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		points[i] = [2]float64{
			cx + ex*cosR - ey*sinR,
			cy + ex*sinR + ey*cosR,
		}
	}
	return points
}

func (s *ButterflyRenderSystem) fillPolygon(screen *ebiten.Image, points [][2]float64, clr color.RGBA) {
	path := vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p[0]), float32(p[1]))
		} else {
			path.LineTo(float32(p[0]), float32(p[1]))
		}
	}
	path.Close()

	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].ColorR = float32(clr.R) / 255
		s.fillVs[i].ColorG = float32(clr.G) / 255
		s.fillVs[i].ColorB = float32(clr.B) / 255
		s.fillVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
