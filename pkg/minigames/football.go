package minigames

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 射门方向
const (
	shotLeft = iota
	shotCenter
	shotRight
)

const footballRounds = 5

// FootballGame 点球大战
//
// 每轮用左/下/右方向键选一个角度射门，门将随机扑向一个方向。
// 方向不同就进球，五轮后结束。
type FootballGame struct {
	round   int
	goals   int
	rng     *rand.Rand
	message string
}

// NewFootballGame 创建点球大战
func NewFootballGame() *FootballGame {
	g := &FootballGame{rng: rand.New(rand.NewSource(rand.Int63()))}
	g.Reset()
	return g
}

// Title 菜单标题
func (g *FootballGame) Title() string {
	return "PENALTY CUP"
}

// Over 返回本局是否结束
func (g *FootballGame) Over() bool {
	return g.round >= footballRounds
}

// Goals 返回进球数
func (g *FootballGame) Goals() int {
	return g.goals
}

// Reset 开始新的一局
func (g *FootballGame) Reset() {
	g.round = 0
	g.goals = 0
	g.message = ""
}

// Shoot 朝指定方向射门
// 返回是否进球；已结束时为无操作
func (g *FootballGame) Shoot(direction int) bool {
	if g.Over() || direction < shotLeft || direction > shotRight {
		return false
	}

	keeper := g.rng.Intn(3)
	g.round++
	if keeper != direction {
		g.goals++
		g.message = "GOAL!"
		return true
	}
	g.message = "SAVED..."
	return false
}

// Update 处理射门输入和重开
func (g *FootballGame) Update(deltaTime float64) {
	if g.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.Reset()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.Shoot(shotLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.Shoot(shotCenter)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.Shoot(shotRight)
	}
}

// Draw 在游戏机屏幕内绘制
func (g *FootballGame) Draw(screen *ebiten.Image, area Screen) {
	// 球门
	goalColor := color.RGBA{210, 210, 220, 255}
	gx := float32(area.X + area.W*0.2)
	gy := float32(area.Y + area.H*0.15)
	gw := float32(area.W * 0.6)
	gh := float32(area.H * 0.4)
	vector.StrokeRect(screen, gx, gy, gw, gh, 3, goalColor, false)

	// 球
	ballColor := color.RGBA{240, 240, 240, 255}
	vector.DrawFilledCircle(screen,
		float32(area.X+area.W/2), float32(area.Y+area.H*0.8),
		float32(area.H*0.05), ballColor, false)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("ROUND %d/%d  GOALS %d", g.round, footballRounds, g.goals),
		int(area.X)+4, int(area.Y)+4)
	if g.message != "" {
		ebitenutil.DebugPrintAt(screen, g.message, int(area.X+area.W/2)-24, int(area.Y+area.H/2))
	}
	if g.Over() {
		ebitenutil.DebugPrintAt(screen, "FULL TIME - SPACE", int(area.X+area.W/2)-50, int(area.Y+area.H)-16)
	} else {
		ebitenutil.DebugPrintAt(screen, "< v > TO SHOOT", int(area.X)+4, int(area.Y+area.H)-16)
	}
}
