// Package config 提供游戏配置：窗口/布局常量，以及从嵌入 data/ 目录
// 加载的房间配置与对话脚本（YAML）。
package config

// 窗口逻辑尺寸
// Ebitengine 会根据实际窗口大小自动缩放
const (
	GameWindowWidth  = 1280
	GameWindowHeight = 720
)

// 聊天面板布局（固定在画面右侧）
const (
	ChatPanelWidth = 300
	// PlayfieldWidth 房间可游玩区域宽度（窗口宽度减去聊天面板）
	PlayfieldWidth = GameWindowWidth - ChatPanelWidth
)

// 时间常量（秒）
// 所有等待都通过帧驱动的计时器实现，没有阻塞等待
const (
	// FadeDuration 房间切换时黑屏淡出/淡入时长
	FadeDuration = 1.0

	// LockSuccessCloseDelay 密码正确后停留时长，让成功反馈播完再关闭
	LockSuccessCloseDelay = 1.5
	// LockShakeDuration 密码错误时面板抖动时长
	LockShakeDuration = 0.5

	// ChatReplyDelay 选择对话选项后，对方回复前的停顿
	ChatReplyDelay = 0.5
	// ChatOptionsDelay 回复出现后，下一组选项出现前的停顿
	ChatOptionsDelay = 0.3

	// FloatingTextDuration 漂浮文字上升并消失的总时长
	FloatingTextDuration = 3.5

	// FeedPourDuration 给猫倒粮的音效时长（倒完才出语音和文字）
	FeedPourDuration = 6.0
	// KettleBoilDuration 烧水壶从打开到烧开的时长
	KettleBoilDuration = 54.0

	// VideoFallbackDuration 视频/梦境类覆盖层在媒体加载失败时的兜底时长
	VideoFallbackDuration = 8.0
)

// 玩家移动
const (
	// PlayerSpeed 玩家移动速度（像素/秒）
	PlayerSpeed = 180.0
)
