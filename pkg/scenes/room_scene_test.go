package scenes

import (
	"testing"

	"github.com/decker502/roomquest/pkg/chat"
	"github.com/decker502/roomquest/pkg/components"
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/ecs"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/overlay"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 工厂产出的空场景
type stubScene struct{}

func (s *stubScene) Update(deltaTime float64) {}
func (s *stubScene) Draw(screen *ebiten.Image) {}

// newTestDeps 组装一套不依赖音频设备和嵌入资源的依赖
// 资源加载会失败并优雅降级，正好覆盖无素材路径
func newTestDeps(t *testing.T) Deps {
	t.Helper()

	rm := game.NewResourceManager(nil)
	settings, _ := game.NewSettingsManager(nil)
	audio := game.NewAudioManager(rm, settings)
	progress := game.NewProgressStore()
	tracks := &config.TracksConfig{HomeRoom: "bedroom", BaseVolume: 0.5, QuietVolume: 0.25}

	script := &config.DialogueScript{
		Character: "Даша",
		Levels: map[int]config.DialogueLevel{
			0: {
				Entry: "start",
				Nodes: map[string]config.DialogueNode{
					"start": {Text: "Привет!"},
				},
			},
		},
	}

	scenes := game.NewSceneManager()
	scenes.SetSceneFactory(func(roomID, from string) game.Scene { return &stubScene{} })

	return Deps{
		Scenes:       scenes,
		Progress:     progress,
		Music:        game.NewMusicManager(tracks, rm, settings),
		Audio:        audio,
		Resources:    rm,
		Chat:         chat.NewPanel(script, progress, audio, nil),
		GoToMainMenu: func() {},
		GoToFinal:    func() {},
	}
}

// testRoomConfig 带齐各类交互区的测试房间
func testRoomConfig() *config.RoomConfig {
	return &config.RoomConfig{
		ID:          "bedroom",
		DisplayName: "Спальня",
		Spawns:      map[string]config.SpawnPoint{"default": {X: 400, Y: 400, Facing: "down"}},
		Zones: []config.ZoneConfig{
			{
				Name: "kitchen-door",
				Rect: config.Rect{X: 0, Y: 300, W: 60, H: 120},
				Action: config.ActionConfig{
					Kind:   "gate",
					Gate:   "kitchen",
					Target: "kitchen",
					Code:   []int{7, 4, 5, 4},
				},
			},
			{
				Name:   "cat-basket",
				Rect:   config.Rect{X: 700, Y: 500, W: 100, H: 80},
				Action: config.ActionConfig{Kind: "cat"},
			},
			{
				Name:   "kettle",
				Rect:   config.Rect{X: 200, Y: 100, W: 60, H: 60},
				Action: config.ActionConfig{Kind: "kettle"},
			},
			{
				Name:   "bathtub",
				Rect:   config.Rect{X: 500, Y: 100, W: 120, H: 80},
				Action: config.ActionConfig{Kind: "bathtub"},
			},
			{
				Name:   "radio",
				Rect:   config.Rect{X: 300, Y: 200, W: 60, H: 60},
				Action: config.ActionConfig{Kind: "music_toggle"},
			},
		},
	}
}

func zoneByName(t *testing.T, s *RoomScene, name string) *config.ZoneConfig {
	t.Helper()
	for i := range s.cfg.Zones {
		if s.cfg.Zones[i].Name == name {
			return &s.cfg.Zones[i]
		}
	}
	t.Fatalf("no zone %q in test config", name)
	return nil
}

// rollLockTo 用转轮操作把密码锁调到指定组合
func rollLockTo(lock *overlay.CodeLockOverlay, code ...int) {
	for i, d := range code {
		for lock.Selected() != i {
			lock.SelectRight()
		}
		for lock.Wheels()[i] != d {
			lock.RollDown()
		}
	}
}

func TestRoomGateUnlockFlow(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")

	zone := zoneByName(t, s, "kitchen-door")
	s.dispatch(zone)

	lock, ok := s.activeOverlay.(*overlay.CodeLockOverlay)
	if !ok {
		t.Fatal("locked gate should open the code lock overlay")
	}

	rollLockTo(lock, 7, 4, 5, 4)
	lock.Submit()

	// 成功后停顿再关闭并放行
	s.Update(config.LockSuccessCloseDelay + 0.1)

	if !deps.Progress.IsUnlocked("kitchen") {
		t.Error("gate should be recorded as unlocked")
	}
	if !deps.Scenes.IsTransitioning() {
		t.Error("unlocking the gate should start the room transition")
	}

	s.Update(0.016)
	if s.activeOverlay != nil {
		t.Error("closed overlay should be released")
	}
}

func TestRoomGateAlreadyUnlocked(t *testing.T) {
	deps := newTestDeps(t)
	deps.Progress.Unlock("kitchen")
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")

	s.dispatch(zoneByName(t, s, "kitchen-door"))

	if s.activeOverlay != nil {
		t.Error("unlocked gate should not show the code lock")
	}
	if !deps.Scenes.IsTransitioning() {
		t.Error("unlocked gate should transition directly")
	}
}

func TestRoomGateWrongCodeStaysLocked(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")

	s.dispatch(zoneByName(t, s, "kitchen-door"))
	lock := s.activeOverlay.(*overlay.CodeLockOverlay)
	rollLockTo(lock, 1, 2, 3, 4)
	lock.Submit()
	s.Update(config.LockShakeDuration + 0.1)

	if deps.Progress.IsUnlocked("kitchen") {
		t.Error("wrong code must not unlock the gate")
	}
	if deps.Scenes.IsTransitioning() {
		t.Error("wrong code must not start a transition")
	}
	if s.activeOverlay == nil {
		t.Error("overlay should stay open for another attempt")
	}
}

func TestRoomKettleTimer(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")
	zone := zoneByName(t, s, "kettle")

	s.dispatch(zone)
	if !s.kettleOn || s.kettleDone {
		t.Fatal("kettle should be heating after first interaction")
	}

	// 没烧开之前重复交互只给提示
	s.dispatch(zone)
	if s.kettleDone {
		t.Error("second interaction must not finish the kettle early")
	}

	s.Update(config.KettleBoilDuration + 1)
	if !s.kettleDone {
		t.Error("kettle should be done after the boil duration")
	}
}

func TestRoomBathtubSetsSteam(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")
	zone := zoneByName(t, s, "bathtub")

	s.dispatch(zone)
	if !s.steam {
		t.Error("bathtub should raise steam")
	}
	s.dispatch(zone)
	if !s.steam {
		t.Error("steam should persist across interactions")
	}
}

func TestRoomCatReaction(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")

	if s.cat == nil {
		t.Fatal("room with a cat zone should spawn the cat")
	}

	s.dispatch(zoneByName(t, s, "cat-basket"))
	if n := len(ecs.GetEntitiesWith1[*components.FloatingTextComponent](s.em)); n != 1 {
		t.Errorf("cat reaction should spawn one floating text, got %d", n)
	}
}

func TestRoomMusicToggleWithoutTrack(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")

	s.dispatch(zoneByName(t, s, "radio"))
	if deps.Music.IsPlaying() {
		t.Error("toggling without a selected track must not start playback")
	}
}

func TestRoomOverlayHidesChatPanel(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")

	s.dispatch(zoneByName(t, s, "kitchen-door"))
	if !deps.Chat.IsHidden() {
		t.Error("opening an overlay should hide the chat panel")
	}

	s.activeOverlay.Cancel()
	s.Update(0.016)
	if s.activeOverlay != nil {
		t.Fatal("cancelled overlay should be released")
	}
	if deps.Chat.IsHidden() {
		t.Error("closing the overlay should restore the chat panel")
	}
}

func TestRoomExitCancelsTimersAndOverlay(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")

	// 烧上水、开着密码锁离开房间
	s.dispatch(zoneByName(t, s, "kettle"))
	s.dispatch(zoneByName(t, s, "kitchen-door"))
	if s.activeOverlay == nil {
		t.Fatal("expected the code lock to be open")
	}

	s.OnExit()

	if s.activeOverlay != nil {
		t.Error("teardown should close the open overlay")
	}
	if deps.Chat.IsHidden() {
		t.Error("teardown should restore the chat panel")
	}

	// 被取消的烧水计时器不会再触发
	s.Update(config.KettleBoilDuration + 1)
	if s.kettleDone {
		t.Error("kettle timer should not fire after teardown")
	}
}

func TestRoomExitRunsOnSceneSwitch(t *testing.T) {
	deps := newTestDeps(t)
	s := NewRoomSceneFromConfig(deps, testRoomConfig(), "")
	deps.Scenes.SwitchTo(s)

	s.dispatch(zoneByName(t, s, "kettle"))
	deps.Scenes.SwitchTo(&stubScene{})

	s.Update(config.KettleBoilDuration + 1)
	if s.kettleDone {
		t.Error("scene switch should cancel the outgoing room's timers")
	}
}
