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

type point struct {
	x, y int
}

// SnakeGame 贪吃蛇
//
// 方向键控制，吃一颗食物加一节、加一分，撞墙或撞到自己结束。
// 反向输入被忽略（不能当场调头）。
type SnakeGame struct {
	cols, rows int
	snake      []point // snake[0] 是蛇头
	dir        point
	nextDir    point
	food       point
	moveTimer  float64
	interval   float64
	over       bool
	score      int
	rng        *rand.Rand
}

// NewSnakeGame 创建贪吃蛇
func NewSnakeGame() *SnakeGame {
	g := &SnakeGame{
		cols: 20,
		rows: 14,
		rng:  rand.New(rand.NewSource(rand.Int63())),
	}
	g.Reset()
	return g
}

// Title 菜单标题
func (g *SnakeGame) Title() string {
	return "SNAKE PARTY"
}

// Over 返回本局是否结束
func (g *SnakeGame) Over() bool {
	return g.over
}

// Score 返回当前分数
func (g *SnakeGame) Score() int {
	return g.score
}

// Reset 开始新的一局
func (g *SnakeGame) Reset() {
	cx, cy := g.cols/2, g.rows/2
	g.snake = []point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.dir = point{1, 0}
	g.nextDir = g.dir
	g.moveTimer = 0
	g.interval = 0.15
	g.over = false
	g.score = 0
	g.placeFood()
}

// SetDirection 设置下一步的移动方向
// 与当前方向相反的输入被忽略
func (g *SnakeGame) SetDirection(dx, dy int) {
	if dx == -g.dir.x && dy == -g.dir.y {
		return
	}
	if dx != 0 && dy != 0 {
		return
	}
	g.nextDir = point{dx, dy}
}

// placeFood 把食物放到不在蛇身上的随机格子
func (g *SnakeGame) placeFood() {
	occupied := make(map[point]bool, len(g.snake))
	for _, p := range g.snake {
		occupied[p] = true
	}
	for {
		p := point{g.rng.Intn(g.cols), g.rng.Intn(g.rows)}
		if !occupied[p] {
			g.food = p
			return
		}
	}
}

// step 前进一格
func (g *SnakeGame) step() {
	g.dir = g.nextDir
	head := point{g.snake[0].x + g.dir.x, g.snake[0].y + g.dir.y}

	// 撞墙
	if head.x < 0 || head.x >= g.cols || head.y < 0 || head.y >= g.rows {
		g.over = true
		return
	}
	// 撞自己（尾巴这一帧会移走，不算）
	for _, p := range g.snake[:len(g.snake)-1] {
		if p == head {
			g.over = true
			return
		}
	}

	g.snake = append([]point{head}, g.snake...)
	if head == g.food {
		g.score++
		if g.interval > 0.06 {
			g.interval -= 0.005
		}
		g.placeFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// Update 处理输入并按节奏前进
func (g *SnakeGame) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.SetDirection(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.SetDirection(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.SetDirection(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.SetDirection(1, 0)
	}

	if g.over {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.Reset()
		}
		return
	}

	g.moveTimer += deltaTime
	for g.moveTimer >= g.interval {
		g.moveTimer -= g.interval
		g.step()
		if g.over {
			break
		}
	}
}

// Draw 在游戏机屏幕内绘制
func (g *SnakeGame) Draw(screen *ebiten.Image, area Screen) {
	cellW := area.W / float64(g.cols)
	cellH := area.H / float64(g.rows)

	snakeColor := color.RGBA{120, 220, 120, 255}
	foodColor := color.RGBA{230, 120, 120, 255}

	for _, p := range g.snake {
		vector.DrawFilledRect(screen,
			float32(area.X+float64(p.x)*cellW)+1, float32(area.Y+float64(p.y)*cellH)+1,
			float32(cellW)-2, float32(cellH)-2, snakeColor, false)
	}
	vector.DrawFilledRect(screen,
		float32(area.X+float64(g.food.x)*cellW)+1, float32(area.Y+float64(g.food.y)*cellH)+1,
		float32(cellW)-2, float32(cellH)-2, foodColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", g.score), int(area.X)+4, int(area.Y)+4)
	if g.over {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - SPACE", int(area.X+area.W/2)-50, int(area.Y+area.H/2))
	}
}
