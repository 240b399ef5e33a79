package game

import (
	"log"

	"github.com/decker502/roomquest/pkg/config"
)

// musicPlayer 抽象唱片播放器，便于测试时替换为假实现
// *audio.Player 满足此接口
type musicPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Rewind() error
}

// playerLoader 按路径加载循环播放器
type playerLoader func(path string) (musicPlayer, error)

// MusicManager 唱片机音乐管理器
//
// 唱片机放在卧室，玩家可以：
//   - 从唱片箱挑一张唱片（SelectTrack）
//   - 点唱片机开关播放/暂停（TogglePlayback）
//
// 音乐跨房间持续播放：开始播放的那个房间记为音源房间，离开它
// 音量减半，回来时恢复。音量层级来自 data/tracks.yaml，再乘以
// 设置里的音乐音量。
//
// 通过构造函数注入到场景中，整个游戏只有一个实例。
type MusicManager struct {
	tracks   *config.TracksConfig
	settings *SettingsManager
	load     playerLoader

	players    map[string]musicPlayer // 唱片ID -> 播放器
	currentID  string
	current    musicPlayer
	room       string // 当前所在房间
	sourceRoom string // 激活播放的房间，决定音量层级
}

// NewMusicManager 创建音乐管理器
//
// 参数：
//   - tracks: 音乐配置（唱片列表和音量层级）
//   - rm: ResourceManager 实例（用于加载循环音频）
//   - sm: SettingsManager 实例（可为 nil）
func NewMusicManager(tracks *config.TracksConfig, rm *ResourceManager, sm *SettingsManager) *MusicManager {
	return &MusicManager{
		tracks:   tracks,
		settings: sm,
		load: func(path string) (musicPlayer, error) {
			return rm.LoadAudio(path)
		},
		players:    make(map[string]musicPlayer),
		room:       tracks.HomeRoom,
		sourceRoom: tracks.HomeRoom,
	}
}

// newMusicManagerWithLoader 测试用构造函数，注入假的播放器加载函数
func newMusicManagerWithLoader(tracks *config.TracksConfig, sm *SettingsManager, load playerLoader) *MusicManager {
	return &MusicManager{
		tracks:     tracks,
		settings:   sm,
		load:       load,
		players:    make(map[string]musicPlayer),
		room:       tracks.HomeRoom,
		sourceRoom: tracks.HomeRoom,
	}
}

// SelectTrack 选择一张唱片
// 如果当前正在播放，立即切换到新唱片；否则只记住选择，
// 等玩家按下唱片机开关再播放。重复选择当前唱片是无操作。
func (mm *MusicManager) SelectTrack(trackID string) {
	if trackID == mm.currentID {
		return
	}

	wasPlaying := mm.IsPlaying()
	if mm.current != nil {
		mm.current.Pause()
	}

	mm.currentID = trackID
	mm.current = nil

	if wasPlaying {
		mm.Play()
	}
	log.Printf("[Music] Track selected: %s", trackID)
}

// CurrentTrackID 返回当前选中的唱片ID（可能尚未播放）
func (mm *MusicManager) CurrentTrackID() string {
	return mm.currentID
}

// IsPlaying 返回唱片机是否正在播放
func (mm *MusicManager) IsPlaying() bool {
	return mm.current != nil && mm.current.IsPlaying()
}

// Play 开始播放当前选中的唱片
// 没有选中唱片或加载失败时为无操作。激活播放的房间被记为
// 音源房间：在这个房间里听是基础音量，走去别的房间才衰减
func (mm *MusicManager) Play() {
	if mm.currentID == "" {
		return
	}
	if mm.settings != nil && !mm.settings.GetSettings().MusicEnabled {
		return
	}

	player := mm.getPlayer(mm.currentID)
	if player == nil {
		return
	}

	mm.current = player
	mm.sourceRoom = mm.room
	mm.applyVolume()
	player.Play()
	log.Printf("[Music] Playing: %s (from %s)", mm.currentID, mm.sourceRoom)
}

// Pause 暂停播放（保留进度，再次 Play 从暂停处继续）
func (mm *MusicManager) Pause() {
	if mm.current != nil {
		mm.current.Pause()
	}
}

// TogglePlayback 唱片机开关
// 返回切换后是否正在播放
func (mm *MusicManager) TogglePlayback() bool {
	if mm.IsPlaying() {
		mm.Pause()
	} else {
		mm.Play()
	}
	return mm.IsPlaying()
}

// SetRoom 通知音乐系统玩家进入了新房间
// 回到音源房间用基础音量，其他房间减半
func (mm *MusicManager) SetRoom(roomID string) {
	mm.room = roomID
	mm.applyVolume()
}

// SourceRoom 返回当前音源房间（最后一次激活播放的房间）
func (mm *MusicManager) SourceRoom() string {
	return mm.sourceRoom
}

// SetMusicVolume 设置音乐总音量并立即应用
func (mm *MusicManager) SetMusicVolume(volume float64) {
	if mm.settings != nil {
		mm.settings.SetMusicVolume(volume)
	}
	mm.applyVolume()
}

// tierVolume 返回当前房间的音量层级
func (mm *MusicManager) tierVolume() float64 {
	if mm.room == mm.sourceRoom {
		return mm.tracks.BaseVolume
	}
	return mm.tracks.QuietVolume
}

// applyVolume 将层级音量 × 设置音量应用到当前播放器
func (mm *MusicManager) applyVolume() {
	if mm.current == nil {
		return
	}
	v := mm.tierVolume()
	if mm.settings != nil {
		v *= mm.settings.GetSettings().MusicVolume
	}
	mm.current.SetVolume(v)
}

// getPlayer 获取或加载唱片播放器
func (mm *MusicManager) getPlayer(trackID string) musicPlayer {
	if player, exists := mm.players[trackID]; exists {
		return player
	}

	track, ok := mm.tracks.TrackByID(trackID)
	if !ok {
		log.Printf("[Music] Warning: unknown track: %s", trackID)
		return nil
	}

	player, err := mm.load(track.File)
	if err != nil {
		log.Printf("[Music] Warning: failed to load track %s: %v", trackID, err)
		return nil
	}
	mm.players[trackID] = player
	return player
}
