package game

import "github.com/decker502/roomquest/pkg/config"

// ZoneRegistry 管理一个房间内的交互区查询
//
// 玩家每帧的包围盒与交互区做 AABB 相交测试。
// 多个交互区重叠时取面积最小的，小的交互区语义上更具体
// （如门上的密码键盘叠在门的过渡区里）。面积相同时取配置中
// 靠前的，保证结果确定。
type ZoneRegistry struct {
	zones []config.ZoneConfig
}

// NewZoneRegistry 从房间配置创建交互区注册表
// 配置在场景存续期间不再修改
func NewZoneRegistry(zones []config.ZoneConfig) *ZoneRegistry {
	return &ZoneRegistry{zones: zones}
}

// ZoneAt 返回与给定包围盒相交的交互区
// 没有相交时返回 nil
func (zr *ZoneRegistry) ZoneAt(box config.Rect) *config.ZoneConfig {
	var best *config.ZoneConfig
	for i := range zr.zones {
		z := &zr.zones[i]
		if !z.Rect.Intersects(box) {
			continue
		}
		if best == nil || z.Rect.Area() < best.Rect.Area() {
			best = z
		}
	}
	return best
}

// ZoneByName 按名字查找交互区
func (zr *ZoneRegistry) ZoneByName(name string) *config.ZoneConfig {
	for i := range zr.zones {
		if zr.zones[i].Name == name {
			return &zr.zones[i]
		}
	}
	return nil
}
