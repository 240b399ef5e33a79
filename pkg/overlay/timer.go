package overlay

// TimerList 帧驱动的一次性计时器集合
//
// 所有延时反馈（密码锁抖动结束、成功后自动关闭、聊天回复停顿）
// 都通过它实现，随 Update 推进，不依赖真实时间。覆盖层关闭时
// CancelAll 丢弃所有挂起的回调。
type TimerList struct {
	timers []*timer
}

type timer struct {
	remaining float64
	fn        func()
}

// Schedule 注册一个 delay 秒后触发的回调
// delay <= 0 时在下一次 Update 触发
func (tl *TimerList) Schedule(delay float64, fn func()) {
	tl.timers = append(tl.timers, &timer{remaining: delay, fn: fn})
}

// Update 推进所有计时器，触发到期的回调
// 回调在移除计时器之后调用，回调里再 Schedule 新计时器是安全的
func (tl *TimerList) Update(deltaTime float64) {
	var due []func()
	remaining := tl.timers[:0]
	for _, t := range tl.timers {
		t.remaining -= deltaTime
		if t.remaining <= 0 {
			due = append(due, t.fn)
		} else {
			remaining = append(remaining, t)
		}
	}
	tl.timers = remaining

	for _, fn := range due {
		fn()
	}
}

// CancelAll 丢弃所有挂起的计时器
func (tl *TimerList) CancelAll() {
	tl.timers = nil
}

// Pending 返回挂起的计时器数量
func (tl *TimerList) Pending() int {
	return len(tl.timers)
}
