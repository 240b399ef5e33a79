package game

import (
	"testing"

	"github.com/decker502/roomquest/pkg/config"
)

func TestZoneAt(t *testing.T) {
	zr := NewZoneRegistry([]config.ZoneConfig{
		{Name: "door", Rect: config.Rect{X: 0, Y: 0, W: 100, H: 200}},
		{Name: "keypad", Rect: config.Rect{X: 60, Y: 40, W: 30, H: 30}},
		{Name: "shelf", Rect: config.Rect{X: 500, Y: 0, W: 80, H: 80}},
	})

	tests := []struct {
		name string
		box  config.Rect
		want string
	}{
		{"inside door only", config.Rect{X: 10, Y: 150, W: 20, H: 20}, "door"},
		{"overlapping door and keypad picks smaller", config.Rect{X: 65, Y: 45, W: 10, H: 10}, "keypad"},
		{"inside shelf", config.Rect{X: 510, Y: 10, W: 20, H: 20}, "shelf"},
		{"nowhere", config.Rect{X: 300, Y: 300, W: 20, H: 20}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := zr.ZoneAt(tt.box)
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected no zone, got %s", got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected zone %s, got nil", tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("expected zone %s, got %s", tt.want, got.Name)
			}
		})
	}
}

func TestZoneAtEqualAreaIsDeterministic(t *testing.T) {
	zr := NewZoneRegistry([]config.ZoneConfig{
		{Name: "first", Rect: config.Rect{X: 0, Y: 0, W: 50, H: 50}},
		{Name: "second", Rect: config.Rect{X: 25, Y: 0, W: 50, H: 50}},
	})

	// 两个区面积相同：取配置中靠前的
	box := config.Rect{X: 30, Y: 10, W: 10, H: 10}
	for i := 0; i < 10; i++ {
		got := zr.ZoneAt(box)
		if got == nil || got.Name != "first" {
			t.Fatalf("expected first on every query, got %v", got)
		}
	}
}

func TestZoneByName(t *testing.T) {
	zr := NewZoneRegistry([]config.ZoneConfig{
		{Name: "door", Rect: config.Rect{X: 0, Y: 0, W: 10, H: 10}},
	})
	if zr.ZoneByName("door") == nil {
		t.Error("expected to find door")
	}
	if zr.ZoneByName("window") != nil {
		t.Error("expected window to be missing")
	}
}
