package game

import (
	"strings"
	"testing"
)

// 测试进程不调用 embedded.Init()，所有嵌入读取都会失败。
// 这正好覆盖资源缺失时的降级路径：加载报错、游戏不崩溃。

func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(nil)

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.imageCache == nil {
		t.Error("imageCache is nil")
	}
	if rm.audioCache == nil {
		t.Error("audioCache is nil")
	}
	if rm.fontFaceCache == nil {
		t.Error("fontFaceCache is nil")
	}
}

func TestLoadImageMissingAsset(t *testing.T) {
	rm := NewResourceManager(nil)

	if _, err := rm.LoadImage("assets/images/rooms/nonexistent.png"); err == nil {
		t.Error("expected error for missing embedded image")
	}
}

func TestLoadImageBadPrefix(t *testing.T) {
	rm := NewResourceManager(nil)

	_, err := rm.LoadImage("images/rooms/bedroom.png")
	if err == nil {
		t.Fatal("expected error for path outside assets/ and data/")
	}
	if !strings.Contains(err.Error(), "prefix") {
		t.Errorf("error should mention the path prefix, got: %v", err)
	}
}

func TestLoadImageOrNilDegrades(t *testing.T) {
	rm := NewResourceManager(nil)

	if img := rm.LoadImageOrNil("assets/images/missing.png"); img != nil {
		t.Error("missing image should degrade to nil")
	}
	if img := rm.LoadImageOrNil(""); img != nil {
		t.Error("empty path should return nil without logging")
	}
}

func TestGetImageBeforeLoad(t *testing.T) {
	rm := NewResourceManager(nil)

	if img := rm.GetImage("assets/images/rooms/bedroom.png"); img != nil {
		t.Error("GetImage should return nil for non-loaded image")
	}
}

func TestLoadAudioMissingFile(t *testing.T) {
	rm := NewResourceManager(nil)

	if _, err := rm.LoadAudio("assets/audio/music/nonexistent.ogg"); err == nil {
		t.Error("expected error for missing audio file")
	}
}

func TestGetAudioPlayerBeforeLoad(t *testing.T) {
	rm := NewResourceManager(nil)

	if player := rm.GetAudioPlayer("assets/audio/music/queen.ogg"); player != nil {
		t.Error("GetAudioPlayer should return nil for non-loaded audio")
	}
}

func TestLoadFontMissingFile(t *testing.T) {
	rm := NewResourceManager(nil)

	if _, err := rm.LoadFont("assets/fonts/main.ttf", 18); err == nil {
		t.Error("expected error for missing font")
	}
	if face := rm.GetFont("assets/fonts/main.ttf", 18); face != nil {
		t.Error("GetFont should return nil when loading failed")
	}
}
