// Package systems 包含作用于 ECS 实体的逻辑系统。
// 房间场景用它们驱动短暂的画面效果（漂浮文字等）。
package systems

import (
	"image/color"

	"github.com/decker502/roomquest/pkg/components"
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/ecs"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FloatingTextSystem 更新并绘制漂浮文字
//
// 文字随时间上升，寿命最后三分之一逐渐变透明，到期销毁实体。
type FloatingTextSystem struct {
	entityManager *ecs.EntityManager
	face          *text.GoTextFace
}

// NewFloatingTextSystem 创建漂浮文字系统
func NewFloatingTextSystem(em *ecs.EntityManager, face *text.GoTextFace) *FloatingTextSystem {
	return &FloatingTextSystem{
		entityManager: em,
		face:          face,
	}
}

// Spawn 在指定位置生成一条漂浮文字
func (s *FloatingTextSystem) Spawn(textStr string, x, y float64) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(s.entityManager, id, &components.FloatingTextComponent{
		Text:     textStr,
		Duration: config.FloatingTextDuration,
		RiseRate: 18,
	})
	return id
}

// Update 推进所有漂浮文字
func (s *FloatingTextSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.FloatingTextComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		ft, ok := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		ft.Age += deltaTime
		pos.Y -= ft.RiseRate * deltaTime

		if ft.Age >= ft.Duration {
			s.entityManager.DestroyEntity(id)
		}
	}

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制所有漂浮文字
func (s *FloatingTextSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.FloatingTextComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if ft == nil || pos == nil {
			continue
		}

		alpha := 1.0
		fadeStart := ft.Duration * 2 / 3
		if ft.Age > fadeStart {
			alpha = utils.EaseOutQuad(1 - (ft.Age-fadeStart)/(ft.Duration-fadeStart))
		}

		if s.face == nil {
			ebitenutil.DebugPrintAt(screen, ft.Text, int(pos.X), int(pos.Y))
			continue
		}

		w, _ := text.Measure(ft.Text, s.face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X-w/2, pos.Y)
		op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, 255})
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, ft.Text, s.face, op)
	}
}
