package game

import "log"

// 游戏中的门禁解锁顺序
// 聊天层级 = 已解锁门禁数，因此顺序即剧情推进顺序
var gateOrder = []string{"kitchen", "bathroom", "hallway", "street"}

// ProgressStore 保存一局游戏的谜题进度
//
// 进度只增不减：门禁一旦解锁就保持解锁，重复解锁是无操作。
// 本结构不做持久化，关掉游戏即从头开始。
// 通过构造函数注入到需要它的场景和覆盖层中。
type ProgressStore struct {
	unlocked  map[string]bool
	listeners []func(gate string)
}

// NewProgressStore 创建空进度
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		unlocked: make(map[string]bool),
	}
}

// Unlock 解锁指定门禁
// 返回是否为首次解锁；重复解锁返回 false 且不触发监听器
func (ps *ProgressStore) Unlock(gate string) bool {
	if ps.unlocked[gate] {
		return false
	}
	ps.unlocked[gate] = true
	log.Printf("[Progress] Gate unlocked: %s (level %d)", gate, ps.Level())
	for _, fn := range ps.listeners {
		fn(gate)
	}
	return true
}

// IsUnlocked 检查门禁是否已解锁
func (ps *ProgressStore) IsUnlocked(gate string) bool {
	return ps.unlocked[gate]
}

// Level 返回当前进度层级（已解锁的门禁数）
// 聊天面板用它选择对话树
func (ps *ProgressStore) Level() int {
	n := 0
	for _, g := range gateOrder {
		if ps.unlocked[g] {
			n++
		}
	}
	return n
}

// OnUnlock 注册门禁解锁监听器
// 只在首次解锁时触发
func (ps *ProgressStore) OnUnlock(fn func(gate string)) {
	ps.listeners = append(ps.listeners, fn)
}
