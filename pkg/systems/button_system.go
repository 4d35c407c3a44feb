package systems

import (
	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 隐藏或禁用的按钮不响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 根据本帧指针状态更新按钮，返回是否有按钮被点击
//
// 回调在所有按钮状态更新完成后才执行：回调可能切换界面层，
// 不能让同一次释放落到新出现的按钮上。
func (s *ButtonSystem) Update(pointer utils.PointerFrame) bool {
	px, py := float64(pointer.X), float64(pointer.Y)
	var clicked func()

	for _, entityID := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Visible {
			button.State = components.UINormal
			continue
		}
		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !utils.PointInRect(px, py, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pointer.Pressed:
			button.State = components.UIClicked
		case pointer.JustReleased:
			// 释放瞬间触发回调，之后恢复悬停状态
			if clicked == nil && button.OnClick != nil {
				clicked = button.OnClick
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	if clicked != nil {
		clicked()
		return true
	}
	return false
}

// ButtonAt 返回覆盖指定点的可见按钮
func (s *ButtonSystem) ButtonAt(x, y float64) (ecs.EntityID, bool) {
	for _, entityID := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if button.Visible && utils.PointInRect(x, y, pos.X, pos.Y, button.Width, button.Height) {
			return entityID, true
		}
	}
	return 0, false
}

// SetGroupVisible 显示或隐藏一个界面层的全部按钮
func (s *ButtonSystem) SetGroupVisible(group components.ButtonGroup, visible bool) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.Group == group {
			button.Visible = visible
		}
	}
}

// SetVisible 显示或隐藏单个按钮
func (s *ButtonSystem) SetVisible(entityID ecs.EntityID, visible bool) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID); ok {
		button.Visible = visible
	}
}
