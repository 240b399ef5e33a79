package minigames

import "testing"

func TestFootballEndsAfterRounds(t *testing.T) {
	g := NewFootballGame()
	for i := 0; i < footballRounds; i++ {
		if g.Over() {
			t.Fatalf("game over too early at round %d", i)
		}
		g.Shoot(shotLeft)
	}
	if !g.Over() {
		t.Error("game should end after all rounds")
	}

	// 结束后射门是无操作
	before := g.round
	g.Shoot(shotCenter)
	if g.round != before {
		t.Error("shot after full time should be ignored")
	}
}

func TestFootballGoalsCounted(t *testing.T) {
	g := NewFootballGame()
	goals := 0
	for i := 0; i < footballRounds; i++ {
		if g.Shoot(shotRight) {
			goals++
		}
	}
	if g.Goals() != goals {
		t.Errorf("expected %d goals, got %d", goals, g.Goals())
	}
	if g.Goals() > footballRounds {
		t.Errorf("goals cannot exceed rounds, got %d", g.Goals())
	}
}

func TestFootballInvalidDirection(t *testing.T) {
	g := NewFootballGame()
	if g.Shoot(99) {
		t.Error("invalid direction should not score")
	}
	if g.round != 0 {
		t.Error("invalid direction should not consume a round")
	}
}

func TestFootballReset(t *testing.T) {
	g := NewFootballGame()
	for i := 0; i < footballRounds; i++ {
		g.Shoot(shotLeft)
	}
	g.Reset()
	if g.Over() || g.Goals() != 0 {
		t.Error("reset should start a fresh shootout")
	}
}
