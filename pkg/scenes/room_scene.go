// Package scenes 实现游戏的各个场景：主菜单、房间、终场。
// 场景由 game.SceneManager 驱动，房间之间通过淡入淡出切换。
package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/roomquest/pkg/chat"
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/ecs"
	"github.com/decker502/roomquest/pkg/entities"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/overlay"
	"github.com/decker502/roomquest/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Deps 场景依赖集合
// 所有单例都在 app 层创建并注入，场景不持有全局状态
type Deps struct {
	Scenes    *game.SceneManager
	Progress  *game.ProgressStore
	Music     *game.MusicManager
	Audio     *game.AudioManager
	Resources *game.ResourceManager
	Chat      *chat.Panel
	Face      *text.GoTextFace

	// GoToMainMenu 返回主菜单（ESC）
	GoToMainMenu func()
	// GoToFinal 进入终场（临街门禁解锁后）
	GoToFinal func()
}

// RoomScene 一个房间的场景控制器
//
// 负责玩家移动、交互区分发、覆盖层生命周期和房间内效果。
// 覆盖层打开时房间暂停：移动和交互输入不再处理，但动画
// （漂浮文字、猫）继续走。
type RoomScene struct {
	deps Deps
	cfg  *config.RoomConfig

	zones      *game.ZoneRegistry
	player     *entities.Player
	npc        *entities.NPC
	cat        *entities.Cat
	background *ebiten.Image

	em       *ecs.EntityManager
	floating *systems.FloatingTextSystem
	timers   overlay.TimerList
	rng      *rand.Rand

	// 懒创建的覆盖层，按交互区名缓存
	overlays      map[string]overlay.Overlay
	activeOverlay overlay.Overlay

	// 房间内状态（离开房间即丢失，进度类状态走 ProgressStore）
	steam      bool // 浴室：放过热水，镜子起雾
	kettleOn   bool
	kettleDone bool
	feeding    bool
	washing    bool

	// 本帧玩家脚下的交互区（用于画提示）
	hovered *config.ZoneConfig
}

// NewRoomScene 加载房间配置并创建场景
// from 为来源房间 ID，决定出生点
func NewRoomScene(deps Deps, roomID, from string) (*RoomScene, error) {
	cfg, err := config.LoadRoomConfig(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to create room %s: %w", roomID, err)
	}
	return NewRoomSceneFromConfig(deps, cfg, from), nil
}

// NewRoomSceneFromConfig 从已解析的配置创建场景
func NewRoomSceneFromConfig(deps Deps, cfg *config.RoomConfig, from string) *RoomScene {
	em := ecs.NewEntityManager()
	s := &RoomScene{
		deps:       deps,
		cfg:        cfg,
		zones:      game.NewZoneRegistry(cfg.Zones),
		player:     entities.NewPlayer(cfg.SpawnFor(from), deps.Resources.LoadImageOrNil("assets/images/sprites/karina.png")),
		background: deps.Resources.LoadImageOrNil(cfg.Background),
		em:         em,
		floating:   systems.NewFloatingTextSystem(em, deps.Face),
		overlays:   make(map[string]overlay.Overlay),
		rng:        rand.New(rand.NewSource(rand.Int63())),
	}

	if cfg.NPC != nil {
		s.npc = entities.NewNPC(cfg.NPC, deps.Resources.LoadImageOrNil(cfg.NPC.Sprite))
	}

	// 有猫交互区的房间才有猫，猫待在交互区中心附近
	if z := s.catZone(); z != nil {
		s.cat = entities.NewCat(z.Rect.X+z.Rect.W/2, z.Rect.Y+z.Rect.H/2,
			deps.Resources.LoadImageOrNil("assets/images/sprites/rexy.png"))
	}

	// 音乐跟随房间调整音量
	deps.Music.SetRoom(cfg.ID)

	log.Printf("[Room] Entered %s (from %q)", cfg.ID, from)
	return s
}

// catZone 找到房间里的猫交互区
func (s *RoomScene) catZone() *config.ZoneConfig {
	for i := range s.cfg.Zones {
		if s.cfg.Zones[i].Action.Kind == "cat" {
			return &s.cfg.Zones[i]
		}
	}
	return nil
}

// RoomID 返回房间 ID
func (s *RoomScene) RoomID() string {
	return s.cfg.ID
}

// Update 房间主循环
func (s *RoomScene) Update(deltaTime float64) {
	// 环境动画不受暂停影响
	s.floating.Update(deltaTime)
	s.timers.Update(deltaTime)
	if s.cat != nil {
		s.cat.Update(deltaTime)
	}
	s.deps.Chat.Update(deltaTime)

	// 覆盖层打开时房间暂停
	if s.activeOverlay != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.activeOverlay.Cancel()
		}
		s.activeOverlay.Update(deltaTime)
		if s.activeOverlay != nil && !s.activeOverlay.IsOpen() {
			s.activeOverlay = nil
			s.deps.Chat.Show()
		}
		return
	}

	// 淡入淡出期间屏蔽玩家输入
	if s.deps.Scenes.IsTransitioning() {
		s.hovered = nil
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.deps.GoToMainMenu()
		return
	}

	s.player.Update(deltaTime, s.cfg.Walls)
	s.hovered = s.zones.ZoneAt(s.player.InteractBox())

	if s.hovered != nil && interactPressed() {
		s.dispatch(s.hovered)
	}
}

// interactPressed 检查交互键（E / 空格 / 回车）
func interactPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyE) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

// openOverlay 打开覆盖层并接管输入
// 聊天面板同时让位，关闭时恢复
func (s *RoomScene) openOverlay(ov overlay.Overlay) {
	s.activeOverlay = ov
	s.deps.Chat.Hide()
}

// OnExit 场景被替换前的清理
// 关掉还开着的覆盖层、取消挂起的计时器、停掉本房间的音效，
// 保证旧房间的长音效（烧水、倒猫粮）不带进新房间
func (s *RoomScene) OnExit() {
	if s.activeOverlay != nil {
		s.activeOverlay.Cancel()
		s.activeOverlay = nil
	}
	s.timers.CancelAll()
	s.deps.Audio.StopAll()
	s.deps.Chat.Show()
	log.Printf("[Room] Left %s", s.cfg.ID)
}

// float 在玩家头顶生成漂浮文字
func (s *RoomScene) float(text string) {
	body := s.player.Body()
	s.floating.Spawn(text, body.X+body.W/2, body.Y-40)
}

// floatAt 在指定位置生成漂浮文字
func (s *RoomScene) floatAt(text string, x, y float64) {
	s.floating.Spawn(text, x, y)
}

// Draw 绘制房间
func (s *RoomScene) Draw(screen *ebiten.Image) {
	if s.background != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := s.background.Bounds()
		op.GeoM.Scale(config.PlayfieldWidth/float64(bounds.Dx()), float64(config.GameWindowHeight)/float64(bounds.Dy()))
		screen.DrawImage(s.background, op)
	} else {
		vector.DrawFilledRect(screen, 0, 0, config.PlayfieldWidth, config.GameWindowHeight,
			color.RGBA{38, 34, 46, 255}, false)
	}

	if s.npc != nil {
		s.npc.Draw(screen)
	}
	if s.cat != nil {
		s.cat.Draw(screen)
	}
	s.player.Draw(screen)
	s.floating.Draw(screen)

	// 交互提示
	if s.hovered != nil && s.activeOverlay == nil {
		body := s.player.Body()
		drawHint(screen, s.deps.Face, "E", body.X+body.W/2, body.Y-20)
	}

	s.deps.Chat.Draw(screen)

	if s.activeOverlay != nil {
		s.activeOverlay.Draw(screen)
	}
}

// drawHint 画交互键提示气泡
func drawHint(screen *ebiten.Image, face *text.GoTextFace, label string, cx, cy float64) {
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 12, color.RGBA{20, 20, 26, 220}, false)
	vector.StrokeCircle(screen, float32(cx), float32(cy), 12, 1.5, color.RGBA{200, 200, 210, 255}, false)
	if face == nil {
		return
	}
	w, h := text.Measure(label, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(color.RGBA{235, 235, 240, 255})
	text.Draw(screen, label, face, op)
}
