package scenes

import (
	"image/color"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuCallbacks 主菜单的动作回调
type MenuCallbacks struct {
	OnStart      func()
	OnFullscreen func()
	OnQuit       func()
}

// MainMenuScene 主菜单
// 上下键或鼠标选择，回车/点击确认
type MainMenuScene struct {
	face      *text.GoTextFace
	callbacks MenuCallbacks
	items     []string
	cursor    int
}

// NewMainMenuScene 创建主菜单
func NewMainMenuScene(face *text.GoTextFace, callbacks MenuCallbacks) *MainMenuScene {
	return &MainMenuScene{
		face:      face,
		callbacks: callbacks,
		items:     []string{"Начать", "Полный экран", "Выход"},
	}
}

// Update 处理菜单导航
func (s *MainMenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.cursor = (s.cursor + 1) % len(s.items)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.cursor = (s.cursor - 1 + len(s.items)) % len(s.items)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.activate(s.cursor)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		for i := range s.items {
			x, y, w, h := s.itemRect(i)
			if float64(mx) >= x && float64(mx) < x+w && float64(my) >= y && float64(my) < y+h {
				s.cursor = i
				s.activate(i)
				return
			}
		}
	}
}

// activate 执行选中的菜单项
func (s *MainMenuScene) activate(i int) {
	switch i {
	case 0:
		if s.callbacks.OnStart != nil {
			s.callbacks.OnStart()
		}
	case 1:
		if s.callbacks.OnFullscreen != nil {
			s.callbacks.OnFullscreen()
		}
	case 2:
		if s.callbacks.OnQuit != nil {
			s.callbacks.OnQuit()
		}
	}
}

// itemRect 返回第 i 个菜单项的命中区域
func (s *MainMenuScene) itemRect(i int) (x, y, w, h float64) {
	w = 320
	h = 52
	x = (config.GameWindowWidth - w) / 2
	y = 340 + float64(i)*72
	return x, y, w, h
}

// Draw 绘制主菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{26, 24, 34, 255})

	drawCenteredText(screen, s.face, "КВАРТИРА", config.GameWindowWidth/2, 160, color.RGBA{240, 235, 245, 255})
	drawCenteredText(screen, s.face, "маленькое приключение в четырёх комнатах", config.GameWindowWidth/2, 220, color.RGBA{160, 155, 175, 255})

	for i, item := range s.items {
		x, y, w, h := s.itemRect(i)
		bg := color.RGBA{46, 42, 58, 255}
		if i == s.cursor {
			bg = color.RGBA{74, 66, 96, 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
		drawCenteredText(screen, s.face, item, config.GameWindowWidth/2, y+14, color.RGBA{235, 232, 240, 255})
	}
}

// drawCenteredText 水平居中绘制文本
func drawCenteredText(screen *ebiten.Image, face *text.GoTextFace, str string, cx, y float64, clr color.Color) {
	if face == nil {
		return
	}
	w, _ := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
