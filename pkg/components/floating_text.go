package components

// FloatingTextComponent 漂浮文字效果
// 猫叫、语音台词、水壶提示都用它：文字从触发点缓缓上升并淡出
type FloatingTextComponent struct {
	Text     string  // 显示的文字
	Age      float64 // 已存在时间(秒)
	Duration float64 // 总时长(秒)，到时由系统销毁实体
	RiseRate float64 // 上升速度(像素/秒)
}
