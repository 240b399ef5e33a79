package game

import (
	"testing"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	exitCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// OnExit records that the scene was notified before being replaced.
func (m *MockScene) OnExit() {
	m.exitCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	if sm.IsTransitioning() {
		t.Error("Expected no transition initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerTransition verifies the full fade-out / switch / fade-in cycle.
func TestSceneManagerTransition(t *testing.T) {
	sm := NewSceneManager()
	oldScene := &MockScene{}
	newScene := &MockScene{}
	sm.SwitchTo(oldScene)

	var factoryRoom, factoryFrom string
	sm.SetSceneFactory(func(roomID, from string) Scene {
		factoryRoom = roomID
		factoryFrom = from
		return newScene
	})

	sm.TransitionTo("kitchen", "bedroom")
	if !sm.IsTransitioning() {
		t.Fatal("expected transition to start")
	}
	if sm.currentScene != oldScene {
		t.Error("scene should not switch before fade-out completes")
	}
	if factoryRoom != "" {
		t.Error("factory should not run before fade-out completes")
	}

	// 淡出完成：切换场景，进入淡入
	sm.Update(config.FadeDuration + 0.01)
	if sm.currentScene != newScene {
		t.Error("scene should switch when fade-out completes")
	}
	if factoryRoom != "kitchen" || factoryFrom != "bedroom" {
		t.Errorf("factory got (%s, %s), want (kitchen, bedroom)", factoryRoom, factoryFrom)
	}
	if !sm.IsTransitioning() {
		t.Error("fade-in should still be in progress")
	}

	// 淡入完成
	sm.Update(config.FadeDuration + 0.01)
	if sm.IsTransitioning() {
		t.Error("transition should be finished")
	}
}

// TestSceneManagerSwitchToNotifiesExit verifies that the outgoing scene
// receives OnExit before an immediate switch.
func TestSceneManagerSwitchToNotifiesExit(t *testing.T) {
	sm := NewSceneManager()
	oldScene := &MockScene{}
	sm.SwitchTo(oldScene)

	sm.SwitchTo(&MockScene{})
	if !oldScene.exitCalled {
		t.Error("outgoing scene should be notified on SwitchTo")
	}
}

// TestSceneManagerTransitionNotifiesExitBeforeFactory verifies that the
// outgoing scene is torn down before the incoming scene is constructed.
func TestSceneManagerTransitionNotifiesExitBeforeFactory(t *testing.T) {
	sm := NewSceneManager()
	oldScene := &MockScene{}
	sm.SwitchTo(oldScene)

	exitBeforeFactory := false
	sm.SetSceneFactory(func(roomID, from string) Scene {
		exitBeforeFactory = oldScene.exitCalled
		return &MockScene{}
	})

	sm.TransitionTo("kitchen", "bedroom")
	if oldScene.exitCalled {
		t.Error("OnExit should wait for the fade-out apex")
	}

	sm.Update(config.FadeDuration + 0.01)
	if !oldScene.exitCalled {
		t.Fatal("outgoing scene should be notified at the fade-out apex")
	}
	if !exitBeforeFactory {
		t.Error("OnExit should run before the factory constructs the new scene")
	}
}

// TestSceneManagerTransitionNotInterruptible verifies that a second request
// during a transition is ignored.
func TestSceneManagerTransitionNotInterruptible(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&MockScene{})

	rooms := []string{}
	sm.SetSceneFactory(func(roomID, from string) Scene {
		rooms = append(rooms, roomID)
		return &MockScene{}
	})

	sm.TransitionTo("kitchen", "bedroom")
	sm.TransitionTo("bathroom", "bedroom") // ignored

	sm.Update(config.FadeDuration + 0.01)
	sm.Update(config.FadeDuration + 0.01)

	if len(rooms) != 1 || rooms[0] != "kitchen" {
		t.Errorf("expected only kitchen to be created, got %v", rooms)
	}
}

// TestSceneManagerTransitionNoFactory verifies that TransitionTo without a
// factory does nothing instead of panicking.
func TestSceneManagerTransitionNoFactory(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&MockScene{})
	sm.TransitionTo("kitchen", "")
	if sm.IsTransitioning() {
		t.Error("transition should not start without a factory")
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen) // Should not panic
}
