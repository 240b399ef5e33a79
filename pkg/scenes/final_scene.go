package scenes

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/overlay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// star 终场背景里的一颗星
type star struct {
	x, y  float64
	phase float64
	size  float32
}

// FinalScene 终场：先播放结尾视频，然后显示祝贺画面
// 任意确认键返回主菜单
type FinalScene struct {
	face      *text.GoTextFace
	onExit    func()
	video     *overlay.VideoOverlay
	videoDone bool
	stars     []star
	elapsed   float64
}

// NewFinalScene 创建终场场景
func NewFinalScene(resources *game.ResourceManager, audio *game.AudioManager, face *text.GoTextFace, onExit func()) *FinalScene {
	s := &FinalScene{
		face:   face,
		onExit: onExit,
	}

	rng := rand.New(rand.NewSource(1902))
	s.stars = make([]star, 60)
	for i := range s.stars {
		s.stars[i] = star{
			x:     rng.Float64() * config.GameWindowWidth,
			y:     rng.Float64() * config.GameWindowHeight,
			phase: rng.Float64() * 2 * math.Pi,
			size:  1 + rng.Float32()*2,
		}
	}

	s.video = overlay.NewVideoOverlay(audio, face)
	s.video.Play(resources.LoadImageOrNil("assets/images/final/street.png"), "",
		"assets/audio/sounds/final.ogg", config.VideoFallbackDuration,
		func(overlay.Result) { s.videoDone = true })
	return s
}

// OnExit 场景被替换前停掉还在放的结尾视频和配乐
func (s *FinalScene) OnExit() {
	s.video.Cancel()
}

// Update 终场主循环
func (s *FinalScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if !s.videoDone {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.video.Cancel()
		}
		s.video.Update(deltaTime)
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.onExit != nil {
			s.onExit()
		}
	}
}

// Draw 绘制祝贺画面
func (s *FinalScene) Draw(screen *ebiten.Image) {
	if !s.videoDone {
		s.video.Draw(screen)
		return
	}

	screen.Fill(color.RGBA{14, 12, 28, 255})
	for _, st := range s.stars {
		a := 0.4 + 0.6*math.Abs(math.Sin(s.elapsed*1.2+st.phase))
		c := color.RGBA{255, 255, 240, uint8(a * 255)}
		vector.DrawFilledCircle(screen, float32(st.x), float32(st.y), st.size, c, false)
	}

	drawCenteredText(screen, s.face, "С днём рождения!", config.GameWindowWidth/2, 280,
		color.RGBA{255, 235, 180, 255})
	drawCenteredText(screen, s.face, "Ты разгадала все коды и выбралась на улицу.", config.GameWindowWidth/2, 360,
		color.RGBA{220, 215, 230, 255})
	drawCenteredText(screen, s.face, "Нажми Enter, чтобы вернуться в меню", config.GameWindowWidth/2, 440,
		color.RGBA{150, 145, 165, 255})
}
