package main

import (
	"flag"
	"log"

	"github.com/decker502/roomquest/pkg/app"
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(assetsFS, dataFS)

	// 命令行参数
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	room := flag.String("room", "", "直接进入指定房间（如 bedroom、kitchen），跳过主菜单")
	skipMenu := flag.Bool("skip-menu", false, "跳过加载场景和主菜单，直接进入卧室")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Room:     *room,
		SkipMenu: *skipMenu,
	})
	if err != nil {
		log.Fatalf("[Main] Failed to initialize app: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Квартира")

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	// 正常退出时保存设置（音量、全屏等）
	game.SaveOnExit()
}
