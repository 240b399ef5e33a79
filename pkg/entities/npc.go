package entities

import (
	"image/color"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NPC 房间里的静态角色（达莎坐在豆袋椅上）
// 不会移动，走近后通过聊天面板交流
type NPC struct {
	Name   string
	X, Y   float64
	sprite *ebiten.Image
}

// NewNPC 从房间配置创建 NPC
func NewNPC(cfg *config.NPCConfig, sprite *ebiten.Image) *NPC {
	return &NPC{
		Name:   cfg.Name,
		X:      cfg.X,
		Y:      cfg.Y,
		sprite: sprite,
	}
}

// Draw 绘制 NPC
func (n *NPC) Draw(screen *ebiten.Image) {
	if n.sprite != nil {
		bounds := n.sprite.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(n.X-float64(bounds.Dx())/2, n.Y-float64(bounds.Dy()))
		screen.DrawImage(n.sprite, op)
		return
	}
	vector.DrawFilledRect(screen, float32(n.X)-18, float32(n.Y)-52, 36, 52,
		color.RGBA{200, 170, 130, 255}, false)
}
