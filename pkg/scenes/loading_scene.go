package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// loadStep 一项预加载任务
type loadStep struct {
	label string
	run   func()
}

// LoadingScene 启动时的预加载场景
// 每帧执行一项加载任务并推进进度条，全部完成后回调 OnComplete
type LoadingScene struct {
	resources  *game.ResourceManager
	face       *text.GoTextFace
	onComplete func()

	steps    []loadStep
	next     int
	progress float64
	shown    float64 // 进度条显示值，向 progress 平滑追赶
	done     bool
}

// NewLoadingScene 创建预加载场景
// 预加载失败不致命：缺失的资源在使用处会优雅降级
func NewLoadingScene(resources *game.ResourceManager, audio *game.AudioManager, face *text.GoTextFace, onComplete func()) *LoadingScene {
	s := &LoadingScene{
		resources:  resources,
		face:       face,
		onComplete: onComplete,
	}
	s.steps = []loadStep{
		{"персонажи", func() {
			resources.LoadImageOrNil("assets/images/sprites/karina.png")
			resources.LoadImageOrNil("assets/images/sprites/dasha.png")
			resources.LoadImageOrNil("assets/images/sprites/rexy.png")
		}},
		{"комнаты", func() {
			resources.LoadImageOrNil("assets/images/rooms/bedroom.png")
			resources.LoadImageOrNil("assets/images/rooms/kitchen.png")
			resources.LoadImageOrNil("assets/images/rooms/bathroom.png")
			resources.LoadImageOrNil("assets/images/rooms/hallway.png")
		}},
		{"звуки", func() {
			audio.PreloadSounds([]string{
				"assets/audio/sounds/keypad_press.ogg",
				"assets/audio/sounds/keypad_success.ogg",
				"assets/audio/sounds/keypad_error.ogg",
				"assets/audio/sounds/chat_pop.ogg",
				"assets/audio/sounds/meow.ogg",
			})
		}},
	}
	return s
}

// Update 每帧推进一个加载步骤
func (s *LoadingScene) Update(deltaTime float64) {
	s.shown = utils.Lerp(s.shown, s.progress, 0.2)
	if s.done {
		return
	}
	if s.next < len(s.steps) {
		s.steps[s.next].run()
		s.next++
		s.progress = float64(s.next) / float64(len(s.steps))
		return
	}
	s.done = true
	log.Printf("[Loading] Preload finished (%d steps)", len(s.steps))
	if s.onComplete != nil {
		s.onComplete()
	}
}

// Draw 绘制进度条
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 16, 24, 255})

	barW := 420.0
	barH := 16.0
	x := (config.GameWindowWidth - barW) / 2
	y := config.GameWindowHeight/2 + 40.0

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW), float32(barH),
		color.RGBA{52, 48, 64, 255}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW*s.shown), float32(barH),
		color.RGBA{150, 130, 200, 255}, false)

	drawCenteredText(screen, s.face, "Загрузка...", config.GameWindowWidth/2, y-50, color.RGBA{220, 215, 230, 255})
}
