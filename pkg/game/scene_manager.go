package game

import (
	"image/color"
	"log"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定房间的场景，避免循环依赖
// from 为来源房间 ID，目标场景用它选择出生点；空字符串表示默认出生点
type SceneFactory func(roomID, from string) Scene

// 淡入淡出阶段
type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeOut            // 变黑，结束后切换场景
	fadeIn             // 从黑变亮
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 房间切换通过 TransitionTo 执行三段式流程：
// 淡出到黑 → 工厂创建新场景并切换 → 淡入。
// 淡入淡出期间场景仍会 Update（动画继续），但调用方应通过
// IsTransitioning 屏蔽玩家输入。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory

	phase       fadePhase
	fadeTimer   float64
	pendingRoom string
	pendingFrom string
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene immediately, without a fade.
// Used for the initial scene and for overlay-less jumps (main menu, finale).
// The outgoing scene is notified first, see ExitAware.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.notifyExit()
	sm.currentScene = scene
}

// notifyExit 通知当前场景它即将被替换
func (sm *SceneManager) notifyExit() {
	if ea, ok := sm.currentScene.(ExitAware); ok {
		ea.OnExit()
	}
}

// TransitionTo 以淡出/淡入方式切换到指定房间
// from 为来源房间 ID，传给工厂用于选择出生点
// 已有切换进行中时忽略新请求，保证切换不被中途打断
func (sm *SceneManager) TransitionTo(roomID, from string) {
	if sm.phase != fadeNone {
		log.Printf("[SceneManager] Transition to %s ignored: already transitioning", roomID)
		return
	}
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return
	}
	log.Printf("[SceneManager] Transitioning to room: %s (from %s)", roomID, from)
	sm.phase = fadeOut
	sm.fadeTimer = 0
	sm.pendingRoom = roomID
	sm.pendingFrom = from
}

// IsTransitioning 返回是否正在淡入淡出
// 切换期间调用方应屏蔽玩家输入
func (sm *SceneManager) IsTransitioning() bool {
	return sm.phase != fadeNone
}

// Update updates the currently active scene and advances any fade in progress.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}

	switch sm.phase {
	case fadeOut:
		sm.fadeTimer += deltaTime
		if sm.fadeTimer >= config.FadeDuration {
			// 黑屏顶点：先让旧场景收尾，再创建并切换新场景
			sm.notifyExit()
			newScene := sm.sceneFactory(sm.pendingRoom, sm.pendingFrom)
			if newScene != nil {
				sm.currentScene = newScene
			} else {
				log.Printf("[SceneManager] Error: factory returned nil for room %s", sm.pendingRoom)
			}
			sm.phase = fadeIn
			sm.fadeTimer = 0
		}
	case fadeIn:
		sm.fadeTimer += deltaTime
		if sm.fadeTimer >= config.FadeDuration {
			sm.phase = fadeNone
			sm.fadeTimer = 0
		}
	}
}

// fadeAlpha 返回当前黑幕透明度（0 全透明，1 全黑）
func (sm *SceneManager) fadeAlpha() float64 {
	switch sm.phase {
	case fadeOut:
		a := sm.fadeTimer / config.FadeDuration
		if a > 1 {
			a = 1
		}
		return utils.EaseInOutCubic(a)
	case fadeIn:
		a := 1 - sm.fadeTimer/config.FadeDuration
		if a < 0 {
			a = 0
		}
		return utils.EaseInOutCubic(a)
	}
	return 0
}

// Draw renders the currently active scene, then the fade curtain on top.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}

	if a := sm.fadeAlpha(); a > 0 {
		w := float32(screen.Bounds().Dx())
		h := float32(screen.Bounds().Dy())
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{A: uint8(a * 255)}, false)
	}
}
