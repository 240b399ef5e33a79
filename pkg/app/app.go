// Package app 提供游戏应用的核心包装器
//
// 该包负责所有单例的创建和装配：资源、设置、音频、进度、聊天，
// 以及场景之间的跳转回调。场景只通过注入的依赖访问这些单例。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/roomquest/pkg/chat"
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Room 直接进入指定房间（如 "kitchen"），为空则走正常流程
	Room string
	// SkipMenu 跳过加载场景和主菜单
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	deps         scenes.Deps

	verbose bool
	quit    bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)

	// 设置持久化：存储不可用时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: "roomquest"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 主字体：缺失时所有文本绘制降级为占位
	face, err := resourceManager.LoadFont("assets/fonts/main.ttf", 18)
	if err != nil {
		log.Printf("[App] Warning: failed to load font: %v", err)
		face = nil
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)

	tracks, err := config.LoadTracksConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks config: %w", err)
	}
	musicManager := game.NewMusicManager(tracks, resourceManager, settingsManager)

	script, err := config.LoadDialogueScript("dasha")
	if err != nil {
		return nil, fmt.Errorf("failed to load dialogue script: %w", err)
	}

	progress := game.NewProgressStore()
	chatPanel := chat.NewPanel(script, progress, audioManager, face)

	sceneManager := game.NewSceneManager()

	app := &App{
		sceneManager: sceneManager,
		settings:     settingsManager,
		verbose:      cfg.Verbose,
	}

	deps := scenes.Deps{
		Scenes:    sceneManager,
		Progress:  progress,
		Music:     musicManager,
		Audio:     audioManager,
		Resources: resourceManager,
		Chat:      chatPanel,
		Face:      face,
	}
	deps.GoToMainMenu = func() {
		musicManager.Pause()
		sceneManager.SwitchTo(app.newMainMenu())
	}
	deps.GoToFinal = func() {
		musicManager.Pause()
		sceneManager.SwitchTo(scenes.NewFinalScene(resourceManager, audioManager, face, deps.GoToMainMenu))
	}
	app.deps = deps

	sceneManager.SetSceneFactory(func(roomID, from string) game.Scene {
		scene, err := scenes.NewRoomScene(app.deps, roomID, from)
		if err != nil {
			log.Printf("[App] Error: %v", err)
			return nil
		}
		return scene
	})

	// 启动流程：加载 → 主菜单 → 卧室；-room 参数直接进房间
	switch {
	case cfg.Room != "":
		app.startGame(cfg.Room)
	case cfg.SkipMenu:
		app.startGame("bedroom")
	default:
		sceneManager.SwitchTo(scenes.NewLoadingScene(resourceManager, audioManager, face, func() {
			sceneManager.SwitchTo(app.newMainMenu())
		}))
	}

	return app, nil
}

// newMainMenu 创建主菜单场景
func (a *App) newMainMenu() *scenes.MainMenuScene {
	return scenes.NewMainMenuScene(a.deps.Face, scenes.MenuCallbacks{
		OnStart:      func() { a.startGame("bedroom") },
		OnFullscreen: a.toggleFullscreen,
		OnQuit:       func() { a.quit = true },
	})
}

// startGame 直接进入指定房间
func (a *App) startGame(roomID string) {
	scene, err := scenes.NewRoomScene(a.deps, roomID, "")
	if err != nil {
		log.Printf("[App] Error: failed to start in room %s: %v", roomID, err)
		a.sceneManager.SwitchTo(a.newMainMenu())
		return
	}
	a.sceneManager.SwitchTo(scene)
}

// toggleFullscreen 切换全屏状态并记住设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 退出全屏后要等窗口管理器处理完，再恢复窗口大小
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}
	if a.settings != nil {
		a.settings.SetFullscreen(ebiten.IsFullscreen())
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 退出前保存设置（音量、全屏等）
func (a *App) SaveOnExit() {
	if a.settings == nil {
		return
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}
