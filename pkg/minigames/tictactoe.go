package minigames

import (
	"image/color"
	"math/rand"

	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 棋盘格子状态
const (
	cellEmpty = 0
	cellX     = 1 // 玩家
	cellO     = 2 // 机器
)

// TicTacToeGame 井字棋，玩家执 X 对抗简单机器人
//
// 机器人策略：能赢就赢，能堵就堵，否则占中心/角落/随机。
type TicTacToeGame struct {
	board   [9]int
	turn    int // 轮到谁
	winner  int // 0 无，cellX/cellO，3 平局
	rng     *rand.Rand
	area    Screen // 最近一次绘制区域，点击判定用
	hasArea bool
}

// NewTicTacToeGame 创建井字棋
func NewTicTacToeGame() *TicTacToeGame {
	g := &TicTacToeGame{rng: rand.New(rand.NewSource(rand.Int63()))}
	g.Reset()
	return g
}

// Title 菜单标题
func (g *TicTacToeGame) Title() string {
	return "TIC-TAC-TOE"
}

// Over 返回本局是否结束
func (g *TicTacToeGame) Over() bool {
	return g.winner != 0
}

// Winner 返回赢家（cellX/cellO），平局为 3，未结束为 0
func (g *TicTacToeGame) Winner() int {
	return g.winner
}

// Reset 开始新的一局，玩家先手
func (g *TicTacToeGame) Reset() {
	g.board = [9]int{}
	g.turn = cellX
	g.winner = 0
}

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // 横
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // 竖
	{0, 4, 8}, {2, 4, 6}, // 斜
}

// checkWinner 更新 winner 字段
func (g *TicTacToeGame) checkWinner() {
	for _, line := range winLines {
		a := g.board[line[0]]
		if a != cellEmpty && a == g.board[line[1]] && a == g.board[line[2]] {
			g.winner = a
			return
		}
	}
	for _, c := range g.board {
		if c == cellEmpty {
			return
		}
	}
	g.winner = 3 // 平局
}

// PlayerMove 玩家在指定格子落子
// 非法落子（占用/不是玩家回合/已结束）是无操作
func (g *TicTacToeGame) PlayerMove(cell int) {
	if g.winner != 0 || g.turn != cellX || cell < 0 || cell > 8 || g.board[cell] != cellEmpty {
		return
	}
	g.board[cell] = cellX
	g.checkWinner()
	if g.winner == 0 {
		g.turn = cellO
		g.botMove()
	}
}

// botMove 机器落子
func (g *TicTacToeGame) botMove() {
	cell := g.findLine(cellO) // 能赢就赢
	if cell < 0 {
		cell = g.findLine(cellX) // 能堵就堵
	}
	if cell < 0 && g.board[4] == cellEmpty {
		cell = 4
	}
	if cell < 0 {
		for _, c := range []int{0, 2, 6, 8} {
			if g.board[c] == cellEmpty {
				cell = c
				break
			}
		}
	}
	if cell < 0 {
		var free []int
		for i, c := range g.board {
			if c == cellEmpty {
				free = append(free, i)
			}
		}
		if len(free) == 0 {
			return
		}
		cell = free[g.rng.Intn(len(free))]
	}

	g.board[cell] = cellO
	g.checkWinner()
	if g.winner == 0 {
		g.turn = cellX
	}
}

// findLine 找一个能让 player 连成三子的空格，没有返回 -1
func (g *TicTacToeGame) findLine(player int) int {
	for _, line := range winLines {
		count, empty := 0, -1
		for _, c := range line {
			switch g.board[c] {
			case player:
				count++
			case cellEmpty:
				empty = c
			}
		}
		if count == 2 && empty >= 0 {
			return empty
		}
	}
	return -1
}

// Update 处理点击落子和重开
func (g *TicTacToeGame) Update(deltaTime float64) {
	if g.winner != 0 && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Reset()
		return
	}

	input := utils.GetInputState()
	if !input.JustPressed || !g.hasArea {
		return
	}

	cellW := g.area.W / 3
	cellH := g.area.H / 3
	col := int((float64(input.X) - g.area.X) / cellW)
	row := int((float64(input.Y) - g.area.Y) / cellH)
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return
	}
	g.PlayerMove(row*3 + col)
}

// Draw 在游戏机屏幕内绘制棋盘
func (g *TicTacToeGame) Draw(screen *ebiten.Image, area Screen) {
	g.area = area
	g.hasArea = true

	lineColor := color.RGBA{200, 200, 210, 255}
	xColor := color.RGBA{120, 180, 230, 255}
	oColor := color.RGBA{230, 170, 110, 255}

	cellW := area.W / 3
	cellH := area.H / 3

	for i := 1; i < 3; i++ {
		vector.StrokeLine(screen,
			float32(area.X+float64(i)*cellW), float32(area.Y),
			float32(area.X+float64(i)*cellW), float32(area.Y+area.H), 2, lineColor, false)
		vector.StrokeLine(screen,
			float32(area.X), float32(area.Y+float64(i)*cellH),
			float32(area.X+area.W), float32(area.Y+float64(i)*cellH), 2, lineColor, false)
	}

	for i, c := range g.board {
		if c == cellEmpty {
			continue
		}
		cx := area.X + (float64(i%3)+0.5)*cellW
		cy := area.Y + (float64(i/3)+0.5)*cellH
		r := float32(cellH * 0.3)
		if c == cellX {
			vector.StrokeLine(screen, float32(cx)-r, float32(cy)-r, float32(cx)+r, float32(cy)+r, 3, xColor, false)
			vector.StrokeLine(screen, float32(cx)+r, float32(cy)-r, float32(cx)-r, float32(cy)+r, 3, xColor, false)
		} else {
			vector.StrokeCircle(screen, float32(cx), float32(cy), r, 3, oColor, false)
		}
	}

	if g.winner != 0 {
		msg := "DRAW - SPACE"
		switch g.winner {
		case cellX:
			msg = "YOU WIN - SPACE"
		case cellO:
			msg = "YOU LOSE - SPACE"
		}
		ebitenutil.DebugPrintAt(screen, msg, int(area.X+area.W/2)-45, int(area.Y+area.H)-16)
	}
}
