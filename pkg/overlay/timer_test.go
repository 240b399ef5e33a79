package overlay

import "testing"

func TestTimerFiresOnce(t *testing.T) {
	var tl TimerList
	fired := 0
	tl.Schedule(1.0, func() { fired++ })

	tl.Update(0.5)
	if fired != 0 {
		t.Error("timer should not fire early")
	}

	tl.Update(0.6)
	if fired != 1 {
		t.Errorf("expected 1 firing, got %d", fired)
	}

	tl.Update(1.0)
	if fired != 1 {
		t.Errorf("timer fired again: %d", fired)
	}
}

func TestTimerCancelAll(t *testing.T) {
	var tl TimerList
	fired := false
	tl.Schedule(0.5, func() { fired = true })
	tl.CancelAll()
	tl.Update(1.0)
	if fired {
		t.Error("cancelled timer should not fire")
	}
	if tl.Pending() != 0 {
		t.Errorf("expected 0 pending, got %d", tl.Pending())
	}
}

func TestTimerScheduleFromCallback(t *testing.T) {
	var tl TimerList
	var order []string
	tl.Schedule(0.1, func() {
		order = append(order, "first")
		tl.Schedule(0.1, func() { order = append(order, "second") })
	})

	tl.Update(0.2)
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("expected only first after one update, got %v", order)
	}

	tl.Update(0.2)
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("expected second after next update, got %v", order)
	}
}

func TestTimerMultiple(t *testing.T) {
	var tl TimerList
	var order []string
	tl.Schedule(0.3, func() { order = append(order, "late") })
	tl.Schedule(0.1, func() { order = append(order, "early") })

	tl.Update(0.5)
	if len(order) != 2 {
		t.Fatalf("expected both timers to fire, got %v", order)
	}
}
