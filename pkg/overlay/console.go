package overlay

import (
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/minigames"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ConsoleOverlay 游戏机覆盖层
//
// 打开后显示游戏菜单，上下键选择，回车启动。游戏中按 ESC 回到
// 菜单，菜单里再按 ESC（或 Cancel）才关闭覆盖层。关闭退出码
// 总是 ExitCancelled，打游戏机不推进剧情。
type ConsoleOverlay struct {
	base
	games []minigames.MiniGame
	face  *text.GoTextFace

	cursor  int
	current minigames.MiniGame // nil 表示在菜单
}

// NewConsoleOverlay 创建游戏机覆盖层
func NewConsoleOverlay(games []minigames.MiniGame, face *text.GoTextFace) *ConsoleOverlay {
	return &ConsoleOverlay{games: games, face: face}
}

// Open 打开游戏机，总是从菜单开始
// 已打开时是无操作，正在玩的游戏不被打断
func (co *ConsoleOverlay) Open(done func(Result)) {
	if co.opened {
		return
	}
	co.cursor = 0
	co.current = nil
	co.base.Open(done)
}

// InGame 返回是否正在玩某个游戏（而非停在菜单）
func (co *ConsoleOverlay) InGame() bool {
	return co.current != nil
}

// Launch 启动指定序号的游戏
func (co *ConsoleOverlay) Launch(i int) {
	if i < 0 || i >= len(co.games) {
		return
	}
	co.current = co.games[i]
	co.current.Reset()
}

// Back 从游戏退回菜单；已在菜单时为无操作
func (co *ConsoleOverlay) Back() {
	co.current = nil
}

// Cancel 分级退出：游戏 → 菜单 → 关闭
func (co *ConsoleOverlay) Cancel() {
	if !co.opened {
		return
	}
	if co.current != nil {
		co.Back()
		return
	}
	co.base.Cancel()
}

// Update 推进菜单导航或当前游戏
func (co *ConsoleOverlay) Update(deltaTime float64) {
	if !co.opened {
		return
	}

	if co.current != nil {
		co.current.Update(deltaTime)
		return
	}

	if len(co.games) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		co.cursor = (co.cursor + 1) % len(co.games)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		co.cursor = (co.cursor - 1 + len(co.games)) % len(co.games)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		co.Launch(co.cursor)
	}
}

// screenArea 返回游戏机"屏幕"的绘制区域
func (co *ConsoleOverlay) screenArea() minigames.Screen {
	w := 640.0
	h := 440.0
	return minigames.Screen{
		X: (config.PlayfieldWidth - w) / 2,
		Y: (float64(config.GameWindowHeight) - h) / 2,
		W: w,
		H: h,
	}
}

// Draw 绘制游戏机外壳和屏幕内容
func (co *ConsoleOverlay) Draw(screen *ebiten.Image) {
	if !co.opened {
		return
	}

	drawDim(screen)

	area := co.screenArea()
	// 外壳比屏幕大一圈
	drawPanel(screen, float32(area.X)-24, float32(area.Y)-60, float32(area.W)+48, float32(area.H)+100)
	drawKey(screen, float32(area.X), float32(area.Y), float32(area.W), float32(area.H), colorBlack)

	cx := area.X + area.W/2
	if co.current != nil {
		drawLabelCentered(screen, co.face, co.current.Title(), cx, area.Y-44, textColor)
		co.current.Draw(screen, area)
		return
	}

	drawLabelCentered(screen, co.face, "ИГРОВАЯ ПРИСТАВКА", cx, area.Y-44, textColor)
	y := area.Y + 80
	for i, g := range co.games {
		clr := textColor
		label := g.Title()
		if i == co.cursor {
			clr = okColor
			label = "> " + label + " <"
		}
		drawLabelCentered(screen, co.face, label, cx, y, clr)
		y += 48
	}
}
