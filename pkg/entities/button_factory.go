package entities

import (
	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewButton 创建矢量按钮实体
//
// 参数：
//   - em: 实体管理器
//   - group: 按钮所属界面层
//   - x, y: 按钮左上角（屏幕坐标）
//   - width, height: 按钮尺寸
//   - label: 按钮文字
//   - font: 文字字体（可为 nil，此时渲染系统不绘制文字）
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
//
// 按钮初始为隐藏状态，由场景根据界面层切换可见性。
func NewButton(
	em *ecs.EntityManager,
	group components.ButtonGroup,
	x, y, width, height float64,
	label string,
	font *text.GoTextFace,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Group:   group,
		Label:   label,
		Font:    font,
		Width:   width,
		Height:  height,
		State:   components.UINormal,
		Visible: false,
		Enabled: true,
		OnClick: onClick,
	})

	return entity
}
