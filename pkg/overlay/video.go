package overlay

import (
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// VideoOverlay 全屏播放类覆盖层：梦境和终场影片
//
// 显示一张全屏图（配乐可选），播放指定时长后以 ExitFinished
// 关闭。点击可以跳过，同样算播放完毕，梦做没做完都得醒。
// 素材缺失时显示字幕文本，时长退化为 VideoFallbackDuration。
type VideoOverlay struct {
	base
	audio *game.AudioManager
	face  *text.GoTextFace

	image    *ebiten.Image
	caption  string
	sound    string
	duration float64
	elapsed  float64
	guard    float64
}

// NewVideoOverlay 创建播放覆盖层
func NewVideoOverlay(audio *game.AudioManager, face *text.GoTextFace) *VideoOverlay {
	return &VideoOverlay{audio: audio, face: face}
}

// Play 开始播放
// duration <= 0 时使用兜底时长。已在播放时是无操作，
// 进度和回调都不受影响
func (vo *VideoOverlay) Play(image *ebiten.Image, caption, sound string, duration float64, done func(Result)) {
	if vo.opened {
		return
	}
	vo.image = image
	vo.caption = caption
	vo.sound = sound
	vo.duration = duration
	if vo.duration <= 0 {
		vo.duration = config.VideoFallbackDuration
	}
	vo.elapsed = 0
	vo.guard = 0.2
	vo.Open(done)

	if vo.audio != nil && sound != "" {
		vo.audio.PlaySound(sound)
	}
}

// finish 以 ExitFinished 关闭并停掉配乐
func (vo *VideoOverlay) finish() {
	if vo.audio != nil && vo.sound != "" {
		vo.audio.StopSound(vo.sound)
	}
	vo.exit(Result{Code: ExitFinished})
}

// Skip 跳过播放（等价于播放完毕）
func (vo *VideoOverlay) Skip() {
	if !vo.opened {
		return
	}
	vo.finish()
}

// Cancel 播放类覆盖层没有"取消"：ESC 也算跳过
func (vo *VideoOverlay) Cancel() {
	vo.Skip()
}

// Update 推进播放进度
func (vo *VideoOverlay) Update(deltaTime float64) {
	if !vo.opened {
		return
	}

	vo.elapsed += deltaTime
	if vo.elapsed >= vo.duration {
		vo.finish()
		return
	}

	if vo.guard > 0 {
		vo.guard -= deltaTime
		return
	}
	input := utils.GetInputState()
	if input.JustPressed {
		vo.Skip()
	}
}

// Draw 全屏绘制
func (vo *VideoOverlay) Draw(screen *ebiten.Image) {
	if !vo.opened {
		return
	}

	// 全黑底
	screen.Fill(colorBlack)

	if vo.image != nil {
		bounds := vo.image.Bounds()
		iw := float64(bounds.Dx())
		ih := float64(bounds.Dy())
		sw := float64(screen.Bounds().Dx())
		sh := float64(screen.Bounds().Dy())

		// 等比铺满（较小的缩放比，完整显示）
		scale := sw / iw
		if ih*scale > sh {
			scale = sh / ih
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate((sw-iw*scale)/2, (sh-ih*scale)/2)
		screen.DrawImage(vo.image, op)
	}

	if vo.caption != "" {
		sw := float64(screen.Bounds().Dx())
		sh := float64(screen.Bounds().Dy())
		drawLabelCentered(screen, vo.face, vo.caption, sw/2, sh-80, textColor)
	}
}
