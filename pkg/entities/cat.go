package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 猫被戳时的随机反应
var catReactions = []string{"Мррр", "Мяу!", "Мяяяяяяу..."}

// Cat 猫（Рекси）
// 在自己的小窝附近慢悠悠踱步，戳一下会有随机反应
type Cat struct {
	X, Y   float64
	homeX  float64
	homeY  float64
	target struct{ x, y float64 }
	pause  float64
	sprite *ebiten.Image
	rng    *rand.Rand
}

// NewCat 在指定位置创建猫
func NewCat(x, y float64, sprite *ebiten.Image) *Cat {
	c := &Cat{
		X: x, Y: y,
		homeX: x, homeY: y,
		sprite: sprite,
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}
	c.target.x, c.target.y = x, y
	c.pause = 2
	return c
}

// React 返回一个随机反应
func (c *Cat) React() string {
	return catReactions[c.rng.Intn(len(catReactions))]
}

// Update 踱步逻辑：歇一会，挑窝附近一个点，慢慢走过去
func (c *Cat) Update(deltaTime float64) {
	if c.pause > 0 {
		c.pause -= deltaTime
		if c.pause <= 0 {
			c.target.x = c.homeX + (c.rng.Float64()-0.5)*120
			c.target.y = c.homeY + (c.rng.Float64()-0.5)*60
		}
		return
	}

	dx := c.target.x - c.X
	dy := c.target.y - c.Y
	dist := math.Hypot(dx, dy)
	if dist < 2 {
		c.pause = 1.5 + c.rng.Float64()*3
		return
	}

	speed := 35.0 * deltaTime
	c.X += dx / dist * speed
	c.Y += dy / dist * speed
}

// Draw 绘制猫
func (c *Cat) Draw(screen *ebiten.Image) {
	if c.sprite != nil {
		bounds := c.sprite.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(c.X-float64(bounds.Dx())/2, c.Y-float64(bounds.Dy()))
		screen.DrawImage(c.sprite, op)
		return
	}
	vector.DrawFilledRect(screen, float32(c.X)-14, float32(c.Y)-18, 28, 18,
		color.RGBA{120, 100, 90, 255}, false)
}
