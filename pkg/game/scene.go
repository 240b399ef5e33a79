package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., main menu, a room, the finale).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// ExitAware 可选接口：场景被替换前收到一次通知
// 用于停掉场景自己启动的音效和计时器，旧场景的副作用不进新场景
type ExitAware interface {
	OnExit()
}
