package config

import (
	"fmt"

	"github.com/decker502/roomquest/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TrackConfig 唱片机可播放的一张唱片
type TrackConfig struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	File  string `yaml:"file"`
	Cover string `yaml:"cover,omitempty"`
}

// TracksConfig 音乐系统配置
// 唱片机放在 HomeRoom 里，离开该房间时音量降到 QuietVolume
type TracksConfig struct {
	HomeRoom    string        `yaml:"homeRoom"`
	BaseVolume  float64       `yaml:"baseVolume"`
	QuietVolume float64       `yaml:"quietVolume"`
	Tracks      []TrackConfig `yaml:"tracks"`
}

// TrackByID 按 ID 查找唱片
func (tc *TracksConfig) TrackByID(id string) (TrackConfig, bool) {
	for _, t := range tc.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return TrackConfig{}, false
}

// LoadTracksConfig 从嵌入的 data/tracks.yaml 加载音乐配置
func LoadTracksConfig() (*TracksConfig, error) {
	raw, err := embedded.ReadFile("data/tracks.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read tracks config: %w", err)
	}
	return ParseTracksConfig(raw)
}

// ParseTracksConfig 解析音乐配置
func ParseTracksConfig(raw []byte) (*TracksConfig, error) {
	var tc TracksConfig
	if err := yaml.Unmarshal(raw, &tc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracks config: %w", err)
	}
	if tc.BaseVolume <= 0 {
		tc.BaseVolume = 0.5
	}
	if tc.QuietVolume <= 0 {
		tc.QuietVolume = tc.BaseVolume / 2
	}
	return &tc, nil
}
