// Package entities 实现房间里会动的东西：玩家、NPC 和猫。
package entities

import (
	"image/color"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 玩家碰撞盒尺寸（脚底附近的一小块，便于穿过家具间隙）
const (
	playerBodyW = 36.0
	playerBodyH = 24.0
	// 交互盒比碰撞盒大一圈，站在物件旁边就能按交互键
	interactPad = 14.0
)

// Player 玩家角色（卡琳娜）
//
// 方向键/WASD 移动，逐轴碰撞：先横后竖，撞墙只挡住该轴，
// 贴墙斜走不会卡住。
type Player struct {
	X, Y   float64 // 碰撞盒左上角
	Facing string  // up / down / left / right
	sprite *ebiten.Image
}

// NewPlayer 在出生点创建玩家
func NewPlayer(spawn config.SpawnPoint, sprite *ebiten.Image) *Player {
	return &Player{
		X:      spawn.X,
		Y:      spawn.Y,
		Facing: spawn.Facing,
		sprite: sprite,
	}
}

// Body 返回碰撞盒
func (p *Player) Body() config.Rect {
	return config.Rect{X: p.X, Y: p.Y, W: playerBodyW, H: playerBodyH}
}

// InteractBox 返回交互判定盒（比碰撞盒大一圈）
func (p *Player) InteractBox() config.Rect {
	return config.Rect{
		X: p.X - interactPad,
		Y: p.Y - interactPad,
		W: playerBodyW + 2*interactPad,
		H: playerBodyH + 2*interactPad,
	}
}

// Update 读取方向输入并移动
func (p *Player) Update(deltaTime float64, walls []config.Rect) {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += 1
	}
	if dx == 0 && dy == 0 {
		return
	}

	// 斜向归一化，速度不因两键同按而加快
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}

	p.Move(dx*config.PlayerSpeed*deltaTime, dy*config.PlayerSpeed*deltaTime, walls)
}

// Move 按位移移动，逐轴处理墙体碰撞
func (p *Player) Move(dx, dy float64, walls []config.Rect) {
	if dx != 0 {
		p.X += dx
		if p.collides(walls) {
			p.X -= dx
		}
	}
	if dy != 0 {
		p.Y += dy
		if p.collides(walls) {
			p.Y -= dy
		}
	}
	p.clamp()

	switch {
	case dy < 0:
		p.Facing = "up"
	case dy > 0:
		p.Facing = "down"
	case dx < 0:
		p.Facing = "left"
	case dx > 0:
		p.Facing = "right"
	}
}

// collides 判断当前位置是否撞墙
func (p *Player) collides(walls []config.Rect) bool {
	body := p.Body()
	for _, w := range walls {
		if body.Intersects(w) {
			return true
		}
	}
	return false
}

// clamp 把玩家限制在可游玩区域内
func (p *Player) clamp() {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > config.PlayfieldWidth-playerBodyW {
		p.X = config.PlayfieldWidth - playerBodyW
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > config.GameWindowHeight-playerBodyH {
		p.Y = config.GameWindowHeight - playerBodyH
	}
}

// Draw 绘制玩家
// 素材缺失时画一个占位矩形
func (p *Player) Draw(screen *ebiten.Image) {
	if p.sprite != nil {
		bounds := p.sprite.Bounds()
		op := &ebiten.DrawImageOptions{}
		// 精灵脚底对齐碰撞盒底边
		op.GeoM.Translate(p.X+(playerBodyW-float64(bounds.Dx()))/2, p.Y+playerBodyH-float64(bounds.Dy()))
		screen.DrawImage(p.sprite, op)
		return
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y-28), playerBodyW, playerBodyH+28,
		color.RGBA{180, 140, 190, 255}, false)
}
