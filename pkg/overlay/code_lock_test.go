package overlay

import (
	"testing"

	"github.com/decker502/roomquest/pkg/config"
)

func newTestLock() *CodeLockOverlay {
	return NewCodeLockOverlay(CodeLockConfig{
		Title:     "Кухня",
		Code:      []int{7, 4, 5, 4},
		HintIcons: []string{"⭐", "Р", "⚽️", "📕"},
	}, nil, nil)
}

// setWheels 用转轮操作把各位转到指定数字
func setWheels(cl *CodeLockOverlay, code ...int) {
	for i, d := range code {
		for cl.Wheels()[i] != d {
			cl.RollDown()
		}
		if i < len(code)-1 {
			cl.SelectRight()
		}
	}
}

func TestCodeLockUnlocksOnSubmit(t *testing.T) {
	cl := newTestLock()

	var results []Result
	cl.Open(func(r Result) { results = append(results, r) })

	setWheels(cl, 7, 4, 5, 4)
	cl.Submit()
	if len(results) != 0 {
		t.Fatal("lock should wait for the success delay before closing")
	}
	if !cl.IsOpen() {
		t.Fatal("lock should still be open during the success pause")
	}

	cl.Update(config.LockSuccessCloseDelay + 0.1)
	if len(results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(results))
	}
	if results[0].Code != ExitUnlocked {
		t.Errorf("expected ExitUnlocked, got %v", results[0].Code)
	}
	if cl.IsOpen() {
		t.Error("lock should be closed after success")
	}
}

func TestCodeLockMatchingWheelsAloneDoNotUnlock(t *testing.T) {
	cl := newTestLock()

	var results []Result
	cl.Open(func(r Result) { results = append(results, r) })

	// 转轮对上密码但不提交：锁保持打开，回调不触发
	setWheels(cl, 7, 4, 5, 4)
	cl.Update(config.LockSuccessCloseDelay + 1)

	if len(results) != 0 {
		t.Fatalf("matching wheels without submit must not unlock, got %v", results)
	}
	if !cl.IsOpen() {
		t.Error("lock should stay open until an explicit submit")
	}
}

func TestCodeLockWheelWraparound(t *testing.T) {
	cl := newTestLock()
	cl.Open(func(Result) {})

	// 从 0 向上转一格到 9
	cl.RollUp()
	if got := cl.Wheels()[0]; got != 9 {
		t.Errorf("rolling up from 0 should give 9, got %d", got)
	}

	// 从 9 向下转一格回到 0
	cl.RollDown()
	if got := cl.Wheels()[0]; got != 0 {
		t.Errorf("rolling down from 9 should give 0, got %d", got)
	}

	// 转满一圈回到起点，途中恰好 10 个状态
	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		seen[cl.Wheels()[0]] = true
		cl.RollDown()
	}
	if len(seen) != 10 {
		t.Errorf("expected 10 distinct wheel states, got %d", len(seen))
	}
	if got := cl.Wheels()[0]; got != 0 {
		t.Errorf("full revolution should return to 0, got %d", got)
	}
}

func TestCodeLockWheelSelectionWraps(t *testing.T) {
	cl := newTestLock()
	cl.Open(func(Result) {})

	if cl.Selected() != 0 {
		t.Fatalf("selection should start at wheel 0, got %d", cl.Selected())
	}
	cl.SelectLeft()
	if cl.Selected() != 3 {
		t.Errorf("selecting left from wheel 0 should wrap to 3, got %d", cl.Selected())
	}
	cl.SelectRight()
	if cl.Selected() != 0 {
		t.Errorf("selecting right from wheel 3 should wrap to 0, got %d", cl.Selected())
	}
}

func TestCodeLockWrongSubmitShakesAndKeepsWheels(t *testing.T) {
	cl := newTestLock()
	cl.Open(func(Result) { t.Fatal("wrong code must not close the lock") })

	setWheels(cl, 1, 1, 1, 1)
	cl.Submit()
	if !cl.IsOpen() {
		t.Fatal("lock should stay open after a wrong submit")
	}

	// 抖动期间转轮被锁住
	cl.RollDown()
	if got := cl.Wheels()[3]; got != 1 {
		t.Errorf("rolling during shake should be ignored, wheel=%d", got)
	}

	// 抖动结束后转轮保持原样，可以继续调
	cl.Update(config.LockShakeDuration + 0.1)
	if got := cl.Wheels(); got[0] != 1 || got[3] != 1 {
		t.Errorf("wheels should keep their digits after shake, got %v", got)
	}
	cl.RollDown()
	if got := cl.Wheels()[3]; got != 2 {
		t.Error("wheels should turn again after shake")
	}
}

func TestCodeLockRetryAfterWrongSubmit(t *testing.T) {
	cl := newTestLock()

	var results []Result
	cl.Open(func(r Result) { results = append(results, r) })

	setWheels(cl, 1, 2, 3, 4)
	cl.Submit()
	cl.Update(config.LockShakeDuration + 0.1)

	// 在保留的转轮上继续调到正确密码
	setWheelsFrom(cl, 7, 4, 5, 4)
	cl.Submit()
	cl.Update(config.LockSuccessCloseDelay + 0.1)

	if len(results) != 1 || results[0].Code != ExitUnlocked {
		t.Fatalf("expected single ExitUnlocked after retry, got %v", results)
	}
}

// setWheelsFrom 不管转轮当前在哪，逐位转到指定数字
func setWheelsFrom(cl *CodeLockOverlay, code ...int) {
	for i, d := range code {
		for cl.Selected() != i {
			cl.SelectRight()
		}
		for cl.Wheels()[i] != d {
			cl.RollDown()
		}
	}
}

func TestCodeLockRepeatedSubmitFiresOnce(t *testing.T) {
	cl := newTestLock()

	fired := 0
	cl.Open(func(Result) { fired++ })

	setWheels(cl, 7, 4, 5, 4)
	cl.Submit()
	cl.Submit() // 成功停留期间重复提交被忽略
	cl.Submit()
	cl.Update(config.LockSuccessCloseDelay + 0.1)

	if fired != 1 {
		t.Errorf("expected exactly one unlock callback, got %d", fired)
	}
}

func TestCodeLockCancelSuppressesPendingSuccess(t *testing.T) {
	cl := newTestLock()

	var results []Result
	cl.Open(func(r Result) { results = append(results, r) })

	setWheels(cl, 7, 4, 5, 4)
	cl.Submit()
	// 成功停留期间取消：只应收到取消，不应再收到解锁
	cl.Cancel()
	cl.Update(config.LockSuccessCloseDelay + 0.1)

	if len(results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(results))
	}
	if results[0].Code != ExitCancelled {
		t.Errorf("expected ExitCancelled, got %v", results[0].Code)
	}
}

func TestCodeLockCancelIsIdempotent(t *testing.T) {
	cl := newTestLock()

	fired := 0
	cl.Open(func(Result) { fired++ })

	cl.Cancel()
	cl.Cancel()
	if fired != 1 {
		t.Errorf("expected one callback, got %d", fired)
	}
}

func TestCodeLockOpenWhileOpenIsNoOp(t *testing.T) {
	cl := newTestLock()

	first := 0
	cl.Open(func(Result) { first++ })
	cl.RollDown()
	cl.SelectRight()

	// 已打开时再次 Open：状态和回调都不变
	cl.Open(func(Result) { t.Fatal("second open must not replace the callback") })
	if got := cl.Wheels()[0]; got != 1 {
		t.Errorf("reopen attempt must not reset wheels, got %d", got)
	}
	if cl.Selected() != 1 {
		t.Errorf("reopen attempt must not reset selection, got %d", cl.Selected())
	}

	cl.Cancel()
	if first != 1 {
		t.Errorf("original callback should fire exactly once, got %d", first)
	}
}

func TestCodeLockReopenFromCallback(t *testing.T) {
	cl := newTestLock()

	reopened := false
	cl.Open(func(Result) {
		// 回调里重新打开：完成回调已清除，不会二次触发
		if !reopened {
			reopened = true
			cl.Open(func(Result) {})
		}
	})

	cl.Cancel()
	if !reopened {
		t.Fatal("callback should have run")
	}
	if !cl.IsOpen() {
		t.Error("lock should be open again after reopen from callback")
	}
}

func TestCodeLockConfigIsCopied(t *testing.T) {
	code := []int{7, 4, 5, 4}
	cl := NewCodeLockOverlay(CodeLockConfig{Code: code}, nil, nil)

	// 外部修改原切片不影响已创建的锁
	code[0] = 9

	var results []Result
	cl.Open(func(r Result) { results = append(results, r) })
	setWheels(cl, 7, 4, 5, 4)
	cl.Submit()
	cl.Update(config.LockSuccessCloseDelay + 0.1)

	if len(results) != 1 || results[0].Code != ExitUnlocked {
		t.Fatalf("lock should still accept the original code, got %v", results)
	}
}

func TestCodeLockReopenResetsWheels(t *testing.T) {
	cl := newTestLock()
	cl.Open(func(Result) {})
	setWheels(cl, 7, 4, 5, 4)
	cl.Cancel()

	cl.Open(func(Result) {})
	for i, d := range cl.Wheels() {
		if d != 0 {
			t.Errorf("reopened lock should start at zero, wheel %d = %d", i, d)
		}
	}
	if cl.Selected() != 0 {
		t.Errorf("reopened lock should select wheel 0, got %d", cl.Selected())
	}
}
