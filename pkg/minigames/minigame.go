// Package minigames 实现游戏机覆盖层里的小游戏。
//
// 每个小游戏都在游戏机屏幕矩形内绘制，通过 MiniGame 接口被
// 覆盖层驱动。小游戏只管自己的一局：重置、更新、绘制、报告
// 是否结束。退出和菜单导航由覆盖层处理。
package minigames

import "github.com/hajimehoshi/ebiten/v2"

// Screen 游戏机屏幕区域（窗口坐标）
type Screen struct {
	X, Y, W, H float64
}

// MiniGame 游戏机小游戏的统一接口
type MiniGame interface {
	// Title 返回显示在菜单里的标题
	Title() string

	// Reset 开始新的一局
	Reset()

	// Update 推进一帧游戏逻辑
	Update(deltaTime float64)

	// Draw 在给定屏幕区域内绘制
	Draw(screen *ebiten.Image, area Screen)

	// Over 返回本局是否已结束（结束画面仍由 Draw 绘制）
	Over() bool
}
