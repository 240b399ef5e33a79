package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放（按键音、猫叫、语音台词等）
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 提供便捷的播放接口
//
// 设计原则：
//   - 中心化管理：所有音效播放都通过 AudioManager
//   - 与设置联动：自动应用 SettingsManager 中的音量设置
//   - 素材缺失时静默降级：播放失败只记日志，不影响游戏流程
//
// 背景音乐（唱片机）由 MusicManager 单独管理。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（路径 -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 参数：
//   - path: 音效文件路径（如 "assets/audio/sounds/keypad_press.ogg"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(path string) bool {
	if path == "" {
		return false
	}
	if am.settingsManager != nil {
		if !am.settingsManager.GetSettings().SoundEnabled {
			return false
		}
	}

	player := am.getSoundPlayer(path)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", path, err)
	}
	player.Play()
	return true
}

// StopSound 停止指定音效
// 用于中断长音效（如倒猫粮的 6 秒倒粮声）
func (am *AudioManager) StopSound(path string) {
	if player, exists := am.soundPlayers[path]; exists && player.IsPlaying() {
		player.Pause()
	}
}

// StopAll 停止所有正在播放的音效
// 场景切换时调用，旧房间没放完的音效不跟进新房间
func (am *AudioManager) StopAll() {
	for _, player := range am.soundPlayers {
		if player.IsPlaying() {
			player.Pause()
		}
	}
}

// SetSoundVolume 设置音效音量
// 此方法会立即应用到所有缓存的音效播放器
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// PreloadSounds 预加载音效
// 在场景初始化时调用，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(paths []string) {
	n := 0
	for _, path := range paths {
		if am.getSoundPlayer(path) != nil {
			n++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", n, len(paths))
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(path string) *audio.Player {
	if player, exists := am.soundPlayers[path]; exists {
		return player
	}

	player, err := am.resourceManager.LoadSoundEffect(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", path, err)
		return nil
	}
	am.soundPlayers[path] = player
	return player
}
