package overlay

import (
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// InspectOverlay 查看面板：一张图和/或几行文字
//
// 用于便签、书、镜子这类只看不操作的物件。任意点击或 ESC 关闭，
// 退出码总是 ExitCancelled（查看不改变游戏状态）。
//
// 图片和文字在打开时通过 Show 传入，同一个实例可以复用于
// 房间里所有可查看的物件。
type InspectOverlay struct {
	base
	face *text.GoTextFace

	image *ebiten.Image
	lines []string

	// 打开后的短暂保护期，吞掉触发打开的那次点击
	guard float64
}

// NewInspectOverlay 创建查看面板
func NewInspectOverlay(face *text.GoTextFace) *InspectOverlay {
	return &InspectOverlay{face: face}
}

// Show 设置内容并打开面板
// image 可为 nil（纯文字），lines 可为空（纯图片）。
// 已打开时是无操作，不替换正在展示的内容
func (iv *InspectOverlay) Show(image *ebiten.Image, lines []string, done func(Result)) {
	if iv.opened {
		return
	}
	iv.image = image
	iv.lines = lines
	iv.guard = 0.1
	iv.Open(done)
}

// Update 推进保护期并处理关闭点击
func (iv *InspectOverlay) Update(deltaTime float64) {
	if !iv.opened {
		return
	}

	if iv.guard > 0 {
		iv.guard -= deltaTime
		return
	}

	input := utils.GetInputState()
	if input.JustPressed {
		iv.Cancel()
	}
}

// Draw 绘制查看面板
func (iv *InspectOverlay) Draw(screen *ebiten.Image) {
	if !iv.opened {
		return
	}

	drawDim(screen)

	panelW := 520.0
	panelH := 420.0
	px := (config.PlayfieldWidth - panelW) / 2
	py := (float64(config.GameWindowHeight) - panelH) / 2
	drawPanel(screen, float32(px), float32(py), float32(panelW), float32(panelH))

	y := py + 24
	if iv.image != nil {
		bounds := iv.image.Bounds()
		iw := float64(bounds.Dx())
		ih := float64(bounds.Dy())

		// 等比缩放到面板内
		maxW := panelW - 48
		maxH := panelH - 140
		scale := 1.0
		if iw > maxW {
			scale = maxW / iw
		}
		if ih*scale > maxH {
			scale = maxH / ih
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(px+(panelW-iw*scale)/2, y)
		screen.DrawImage(iv.image, op)
		y += ih*scale + 20
	}

	cx := px + panelW/2
	for _, line := range iv.lines {
		drawLabelCentered(screen, iv.face, line, cx, y, textColor)
		y += 28
	}
}
