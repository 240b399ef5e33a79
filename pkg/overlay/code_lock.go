package overlay

import (
	"fmt"
	"math"
	"strings"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CodeLockConfig 密码锁的静态配置
// 构造后不再修改；正确密码来自房间配置
type CodeLockConfig struct {
	Title     string   // 面板标题（如 "Кухня"）
	Code      []int    // 正确的 4 位密码
	HintIcons []string // 密码提示图标（emoji/字符），显示在转轮上方
	HintText  string   // 附加提示文字

	KeySound     string // 转轮咔哒声
	SuccessSound string // 成功音
	ErrorSound   string // 错误音
}

// 密码锁状态
type lockStatus int

const (
	lockIdle    lockStatus = iota
	lockShake              // 提交错误，面板抖动中
	lockSuccess            // 提交正确，展示成功反馈后自动关闭
)

// CodeLockOverlay 机械密码锁：四个数字转轮加一个提交按钮
//
// 每个转轮独立转动，数字 0-9 循环；A/D（或左右方向键）在转轮间
// 移动，W/S（或上下方向键）转动当前转轮。转轮对上正确密码本身
// 不解锁，必须显式提交（E/回车或点击按钮）：
//   - 正确：播放成功音，短暂停留后以 ExitUnlocked 关闭
//   - 错误：播放错误音并抖动，转轮保持原样，可以继续调
//
// 抖动和成功停留期间忽略新输入。
type CodeLockOverlay struct {
	base
	cfg   CodeLockConfig
	audio *game.AudioManager
	face  *text.GoTextFace

	wheels    []int
	selected  int
	status    lockStatus
	shakeTime float64
}

// NewCodeLockOverlay 创建密码锁
// cfg 被拷贝一份，调用方之后的修改不影响已创建的锁
func NewCodeLockOverlay(cfg CodeLockConfig, audio *game.AudioManager, face *text.GoTextFace) *CodeLockOverlay {
	cfg.Code = append([]int(nil), cfg.Code...)
	cfg.HintIcons = append([]string(nil), cfg.HintIcons...)
	return &CodeLockOverlay{
		cfg:   cfg,
		audio: audio,
		face:  face,
	}
}

// Open 打开密码锁，转轮归零
// 已打开时是无操作，当前转轮状态和回调都保持不变
func (cl *CodeLockOverlay) Open(done func(Result)) {
	if cl.opened {
		return
	}
	cl.wheels = make([]int, len(cl.cfg.Code))
	cl.selected = 0
	cl.status = lockIdle
	cl.base.Open(done)
}

// Wheels 返回各转轮当前的数字（拷贝）
func (cl *CodeLockOverlay) Wheels() []int {
	return append([]int(nil), cl.wheels...)
}

// Selected 返回当前选中的转轮下标
func (cl *CodeLockOverlay) Selected() int {
	return cl.selected
}

// SelectLeft 选中左边的转轮，最左绕到最右
func (cl *CodeLockOverlay) SelectLeft() {
	if !cl.opened || cl.status != lockIdle || len(cl.wheels) == 0 {
		return
	}
	cl.selected = (cl.selected - 1 + len(cl.wheels)) % len(cl.wheels)
}

// SelectRight 选中右边的转轮，最右绕到最左
func (cl *CodeLockOverlay) SelectRight() {
	if !cl.opened || cl.status != lockIdle || len(cl.wheels) == 0 {
		return
	}
	cl.selected = (cl.selected + 1) % len(cl.wheels)
}

// RollUp 当前转轮向上转：数字减一，0 绕到 9
func (cl *CodeLockOverlay) RollUp() {
	if !cl.opened || cl.status != lockIdle || len(cl.wheels) == 0 {
		return
	}
	cl.wheels[cl.selected] = (cl.wheels[cl.selected] + 9) % 10
	cl.playSound(cl.cfg.KeySound)
}

// RollDown 当前转轮向下转：数字加一，9 绕到 0
func (cl *CodeLockOverlay) RollDown() {
	if !cl.opened || cl.status != lockIdle || len(cl.wheels) == 0 {
		return
	}
	cl.wheels[cl.selected] = (cl.wheels[cl.selected] + 1) % 10
	cl.playSound(cl.cfg.KeySound)
}

// Submit 提交当前转轮组合
// 只有提交才会判定；转轮对上密码本身不触发解锁
func (cl *CodeLockOverlay) Submit() {
	if !cl.opened || cl.status != lockIdle {
		return
	}

	if cl.matches() {
		cl.status = lockSuccess
		cl.playSound(cl.cfg.SuccessSound)
		cl.timers.Schedule(config.LockSuccessCloseDelay, func() {
			cl.exit(Result{Code: ExitUnlocked})
		})
		return
	}

	cl.status = lockShake
	cl.shakeTime = 0
	cl.playSound(cl.cfg.ErrorSound)
	cl.timers.Schedule(config.LockShakeDuration, func() {
		cl.status = lockIdle
	})
}

func (cl *CodeLockOverlay) matches() bool {
	if len(cl.wheels) != len(cl.cfg.Code) {
		return false
	}
	for i, d := range cl.cfg.Code {
		if cl.wheels[i] != d {
			return false
		}
	}
	return true
}

func (cl *CodeLockOverlay) playSound(path string) {
	if cl.audio != nil && path != "" {
		cl.audio.PlaySound(path)
	}
}

// Update 处理输入并推进计时器
func (cl *CodeLockOverlay) Update(deltaTime float64) {
	if !cl.opened {
		return
	}

	cl.timers.Update(deltaTime)
	if cl.status == lockShake {
		cl.shakeTime += deltaTime
	}

	// 键盘：WASD/方向键操作转轮，E/回车提交
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		cl.RollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		cl.RollDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		cl.SelectLeft()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cl.SelectRight()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cl.Submit()
	}

	// 鼠标/触摸
	input := utils.GetInputState()
	if input.JustPressed {
		cl.handleClick(input.X, input.Y)
	}
}

// 转轮布局常量
const (
	lockPanelW = 400.0
	lockPanelH = 420.0
	lockWheelW = 72.0
	lockWheelH = 160.0
	lockGap    = 14.0
	submitW    = 200.0
	submitH    = 52.0
)

// panelOrigin 返回面板左上角（含抖动偏移）
func (cl *CodeLockOverlay) panelOrigin() (float64, float64) {
	x := (config.PlayfieldWidth - lockPanelW) / 2
	y := (float64(config.GameWindowHeight) - lockPanelH) / 2
	if cl.status == lockShake {
		x += math.Sin(cl.shakeTime*40) * 6
	}
	return x, y
}

// wheelRect 返回第 i 个转轮的矩形
func (cl *CodeLockOverlay) wheelRect(i int) (x, y, w, h float64) {
	px, py := cl.panelOrigin()
	n := float64(len(cl.wheels))
	gridX := px + (lockPanelW-n*lockWheelW-(n-1)*lockGap)/2
	x = gridX + float64(i)*(lockWheelW+lockGap)
	y = py + 130
	return x, y, lockWheelW, lockWheelH
}

// submitRect 返回提交按钮的矩形
func (cl *CodeLockOverlay) submitRect() (x, y, w, h float64) {
	px, py := cl.panelOrigin()
	return px + (lockPanelW-submitW)/2, py + lockPanelH - submitH - 24, submitW, submitH
}

// handleClick 处理点击：转轮上半部向上转，下半部向下转，按钮提交
func (cl *CodeLockOverlay) handleClick(mx, my int) {
	if x, y, w, h := cl.submitRect(); pointInRect(mx, my, x, y, w, h) {
		cl.Submit()
		return
	}
	for i := range cl.wheels {
		x, y, w, h := cl.wheelRect(i)
		if !pointInRect(mx, my, x, y, w, h) {
			continue
		}
		if cl.status == lockIdle {
			cl.selected = i
		}
		if float64(my) < y+h/2 {
			cl.RollUp()
		} else {
			cl.RollDown()
		}
		return
	}
}

// Draw 绘制密码锁面板
func (cl *CodeLockOverlay) Draw(screen *ebiten.Image) {
	if !cl.opened {
		return
	}

	drawDim(screen)

	px, py := cl.panelOrigin()
	drawPanel(screen, float32(px), float32(py), lockPanelW, lockPanelH)

	cx := px + lockPanelW/2
	drawLabelCentered(screen, cl.face, cl.cfg.Title, cx, py+18, textColor)

	// 提示图标行
	if len(cl.cfg.HintIcons) > 0 {
		drawLabelCentered(screen, cl.face, strings.Join(cl.cfg.HintIcons, "  "), cx, py+52, textColor)
	}
	if cl.cfg.HintText != "" {
		drawLabelCentered(screen, cl.face, cl.cfg.HintText, cx, py+80, textColor)
	}

	// 当前数字配色：成功绿色，抖动红色
	digitColor := textColor
	switch cl.status {
	case lockSuccess:
		digitColor = okColor
	case lockShake:
		digitColor = errColor
	}

	// 转轮：中间是当前数字，上下露出相邻数字
	for i, d := range cl.wheels {
		x, y, w, h := cl.wheelRect(i)
		clr := keyColor
		if i == cl.selected && cl.status == lockIdle {
			clr = keyHotColor
		}
		drawKey(screen, float32(x), float32(y), float32(w), float32(h), clr)

		mid := y + h/2
		drawLabelCentered(screen, cl.face, fmt.Sprintf("%d", (d+9)%10), x+w/2, mid-58, borderColor)
		drawLabelCentered(screen, cl.face, fmt.Sprintf("%d", d), x+w/2, mid-12, digitColor)
		drawLabelCentered(screen, cl.face, fmt.Sprintf("%d", (d+1)%10), x+w/2, mid+34, borderColor)
	}

	// 提交按钮
	bx, by, bw, bh := cl.submitRect()
	input := utils.GetInputState()
	btnColor := keyColor
	if pointInRect(input.X, input.Y, bx, by, bw, bh) {
		btnColor = keyHotColor
	}
	drawKey(screen, float32(bx), float32(by), float32(bw), float32(bh), btnColor)
	drawLabelCentered(screen, cl.face, "Открыть", bx+bw/2, by+bh/2-10, textColor)
}
