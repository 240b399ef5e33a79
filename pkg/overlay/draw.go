package overlay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 覆盖层通用配色
var (
	dimColor    = color.RGBA{0, 0, 0, 160}     // 覆盖层背后的半透明遮罩
	panelColor  = color.RGBA{32, 30, 38, 240}  // 面板底色
	borderColor = color.RGBA{90, 85, 110, 255} // 面板描边
	keyColor    = color.RGBA{58, 54, 70, 255}  // 按键底色
	keyHotColor = color.RGBA{84, 78, 104, 255} // 按键悬停
	textColor   = color.RGBA{235, 232, 240, 255}
	colorBlack  = color.RGBA{0, 0, 0, 255}
	okColor     = color.RGBA{110, 200, 130, 255}
	errColor    = color.RGBA{220, 90, 90, 255}
)

// drawDim 绘制全屏半透明遮罩，把房间压暗
func drawDim(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, dimColor, false)
}

// drawPanel 绘制带描边的面板矩形
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, false)
}

// drawLabel 绘制一行文本
// 字体缺失时退化为调试字体，保证无素材也能玩
func drawLabel(screen *ebiten.Image, face *text.GoTextFace, str string, x, y float64, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawLabelCentered 在 (cx, y) 水平居中绘制一行文本
func drawLabelCentered(screen *ebiten.Image, face *text.GoTextFace, str string, cx, y float64, clr color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(cx)-len(str)*3, int(y))
		return
	}
	w, _ := text.Measure(str, face, 0)
	drawLabel(screen, face, str, cx-w/2, y, clr)
}

// drawKey 绘制一个按键矩形
func drawKey(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)
}

// pointInRect 判断点是否落在矩形内
func pointInRect(px, py int, x, y, w, h float64) bool {
	fx, fy := float64(px), float64(py)
	return fx >= x && fx < x+w && fy >= y && fy < y+h
}
