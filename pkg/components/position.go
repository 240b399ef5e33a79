package components

// PositionComponent 实体在房间世界坐标中的位置
type PositionComponent struct {
	X float64
	Y float64
}
