// Package overlay 实现房间之上的模态覆盖层：密码锁、查看面板、
// 唱片箱、游戏机和梦境视频。
//
// 覆盖层打开时房间暂停（场景停止处理移动和交互输入），关闭时
// 通过退出码告诉房间发生了什么。每个覆盖层的完成回调恰好触发
// 一次，且在触发前清除，回调里重新打开覆盖层也不会导致二次触发。
package overlay

import "github.com/hajimehoshi/ebiten/v2"

// ExitCode 覆盖层关闭时的退出码
type ExitCode int

const (
	// ExitCancelled 玩家取消（ESC 或点击关闭按钮），什么都没发生
	ExitCancelled ExitCode = iota
	// ExitUnlocked 密码锁输入正确，门禁应当解锁
	ExitUnlocked
	// ExitSelected 玩家在选择面板里选中了一项（见 Result.Item）
	ExitSelected
	// ExitFinished 覆盖层自然播放完毕（梦境视频、长计时）
	ExitFinished
)

// Result 覆盖层的关闭结果
type Result struct {
	Code ExitCode
	// Item 选中项的 ID，仅 ExitSelected 时有意义
	Item string
}

// Overlay 模态覆盖层的统一接口
// 同一时间最多只有一个覆盖层打开（由场景保证）
type Overlay interface {
	// Open 打开覆盖层并注册完成回调
	// 回调在覆盖层关闭时恰好触发一次
	Open(done func(Result))

	// Cancel 以 ExitCancelled 关闭覆盖层
	// 已关闭时为无操作
	Cancel()

	// IsOpen 返回覆盖层是否打开
	IsOpen() bool

	// Update 推进覆盖层逻辑（计时器、输入处理）
	Update(deltaTime float64)

	// Draw 绘制覆盖层（画在房间之上）
	Draw(screen *ebiten.Image)
}

// completion 持有一次性的完成回调
// 触发前先清除引用，保证恰好调用一次
type completion struct {
	fn func(Result)
}

func (c *completion) set(fn func(Result)) {
	c.fn = fn
}

func (c *completion) fire(r Result) {
	if c.fn == nil {
		return
	}
	fn := c.fn
	c.fn = nil
	fn(r)
}

// base 覆盖层公共状态：打开标记、完成回调、计时器列表
// 各覆盖层内嵌它并通过 exit() 关闭自己
type base struct {
	opened bool
	done   completion
	timers TimerList
}

// Open 打开覆盖层并登记完成回调
// 已打开时是无操作：不覆盖已登记的回调，也不重置展示状态
func (b *base) Open(done func(Result)) {
	if b.opened {
		return
	}
	b.opened = true
	b.done.set(done)
}

func (b *base) IsOpen() bool {
	return b.opened
}

// exit 关闭覆盖层并触发完成回调
// 重复调用是无操作；挂起的计时器全部取消，防止关闭后再触发
func (b *base) exit(r Result) {
	if !b.opened {
		return
	}
	b.opened = false
	b.timers.CancelAll()
	b.done.fire(r)
}

func (b *base) Cancel() {
	b.exit(Result{Code: ExitCancelled})
}
