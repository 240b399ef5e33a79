// Package chat 实现画面右侧的常驻聊天面板。
//
// 面板里是和达莎的对话：她按当前进度层级打招呼、给提示，
// 玩家点选项推进对话。每解锁一个门禁，面板自动切到下一层级
// 的对话树。对话不影响谜题状态，纯粹是提示和陪伴。
package chat

import (
	"image/color"
	"log"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/overlay"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Message 聊天记录里的一条消息
type Message struct {
	Text       string
	FromPlayer bool
}

// Panel 聊天面板
//
// 通过构造函数注入进度存储，整个游戏共用一个实例，
// 聊天记录跨房间保留。
type Panel struct {
	script *config.DialogueScript
	audio  *game.AudioManager
	face   *text.GoTextFace

	level    int
	node     string // 当前节点键
	messages []Message
	options  []config.DialogueOption
	timers   overlay.TimerList

	hidden bool // 覆盖层打开期间面板让位
	active bool // 达莎是否在线；离线时只显示占位文字

	// 选项按钮命中区缓存（Draw 时更新）
	optionRects []optionRect
}

type optionRect struct {
	x, y, w, h float64
}

// NewPanel 创建聊天面板并进入初始层级
// 面板订阅进度变化，门禁解锁时自动切换对话层级
func NewPanel(script *config.DialogueScript, progress *game.ProgressStore, audio *game.AudioManager, face *text.GoTextFace) *Panel {
	p := &Panel{
		script: script,
		audio:  audio,
		face:   face,
		level:  -1,
		active: true,
	}
	p.enterLevel(progress.Level())
	progress.OnUnlock(func(string) {
		p.enterLevel(progress.Level())
	})
	return p
}

// Hide 隐藏面板
// 覆盖层打开时调用，把键盘和鼠标焦点完全让给覆盖层
func (p *Panel) Hide() {
	p.hidden = true
}

// Show 恢复显示面板（覆盖层关闭后）
func (p *Panel) Show() {
	p.hidden = false
}

// IsHidden 返回面板是否被隐藏
func (p *Panel) IsHidden() bool {
	return p.hidden
}

// SetActive 切换达莎的在线状态
// 离线时面板只显示占位文字，不出消息和选项（比如玩家在做梦时）
func (p *Panel) SetActive(active bool) {
	p.active = active
}

// IsActive 返回达莎是否在线
func (p *Panel) IsActive() bool {
	return p.active
}

// Messages 返回聊天记录（测试和绘制用）
func (p *Panel) Messages() []Message {
	return p.messages
}

// Options 返回当前可选的选项
func (p *Panel) Options() []config.DialogueOption {
	return p.options
}

// enterLevel 切换到指定进度层级的对话树
func (p *Panel) enterLevel(level int) {
	if level == p.level {
		return
	}

	lv, ok := p.script.LevelFor(level)
	if !ok {
		log.Printf("[Chat] No dialogue for level %d", level)
		return
	}

	p.level = level
	p.options = nil
	p.node = lv.Entry

	entry := lv.Nodes[lv.Entry]
	// 新层级的问候稍后出现，和门禁反馈错开
	p.timers.Schedule(config.ChatReplyDelay, func() {
		p.push(entry.Text, false)
		p.timers.Schedule(config.ChatOptionsDelay, func() {
			p.options = entry.Options
		})
	})
}

// ChooseOption 玩家点选第 i 个选项
func (p *Panel) ChooseOption(i int) {
	if i < 0 || i >= len(p.options) {
		return
	}
	opt := p.options[i]
	p.push(opt.Label, true)
	p.options = nil

	if opt.Next == "" {
		return // 对话到此为止，等下一层级
	}

	lv, ok := p.script.LevelFor(p.level)
	if !ok {
		return
	}
	next, ok := lv.Nodes[opt.Next]
	if !ok {
		log.Printf("[Chat] Warning: missing dialogue node %q in level %d", opt.Next, p.level)
		return
	}
	p.node = opt.Next

	// 回复延迟出现，其后再出下一组选项
	p.timers.Schedule(config.ChatReplyDelay, func() {
		p.push(next.Text, false)
		if len(next.Options) > 0 {
			p.timers.Schedule(config.ChatOptionsDelay, func() {
				p.options = next.Options
			})
		}
	})
}

// push 追加一条消息
func (p *Panel) push(text string, fromPlayer bool) {
	p.messages = append(p.messages, Message{Text: text, FromPlayer: fromPlayer})
	if !fromPlayer && p.audio != nil {
		p.audio.PlaySound("assets/audio/sounds/chat_pop.ogg")
	}
	// 记录只增不减，但面板只画得下最后几十条
	if len(p.messages) > 100 {
		p.messages = p.messages[len(p.messages)-100:]
	}
}

// Update 推进延迟消息并处理选项点击
// 隐藏期间不接受点击（覆盖层独占输入），消息计时照常走
func (p *Panel) Update(deltaTime float64) {
	p.timers.Update(deltaTime)
	if p.hidden || !p.active {
		return
	}

	input := utils.GetInputState()
	if !input.JustPressed {
		return
	}
	for i, r := range p.optionRects {
		if i < len(p.options) &&
			float64(input.X) >= r.x && float64(input.X) < r.x+r.w &&
			float64(input.Y) >= r.y && float64(input.Y) < r.y+r.h {
			p.ChooseOption(i)
			return
		}
	}
}

// 面板配色
var (
	panelBg    = color.RGBA{24, 22, 30, 255}
	dashaBg    = color.RGBA{52, 48, 66, 255}
	playerBg   = color.RGBA{44, 66, 52, 255}
	optionBg   = color.RGBA{60, 56, 78, 255}
	chatText   = color.RGBA{230, 228, 238, 255}
	panelEdge  = color.RGBA{70, 66, 88, 255}
	bubblePadX = 8.0
	bubblePadY = 6.0
)

// Draw 绘制聊天面板（右侧固定列）
// 隐藏时只画空底色；离线时画占位文字
func (p *Panel) Draw(screen *ebiten.Image) {
	px := float64(config.PlayfieldWidth)
	pw := float64(config.ChatPanelWidth)
	ph := float64(config.GameWindowHeight)

	vector.DrawFilledRect(screen, float32(px), 0, float32(pw), float32(ph), panelBg, false)
	vector.StrokeLine(screen, float32(px), 0, float32(px), float32(ph), 2, panelEdge, false)

	if p.hidden {
		return
	}
	if !p.active {
		p.drawLine(screen, "Даша", px+16, 14)
		p.drawLine(screen, "не в сети...", px+16, ph/2)
		return
	}

	p.drawLine(screen, "Даша", px+16, 14)

	// 选项区在底部，先算出高度
	p.optionRects = p.optionRects[:0]
	optionH := 36.0
	optionsTop := ph - 16 - float64(len(p.options))*(optionH+8)

	// 消息从下往上排
	lineH := 24.0
	maxWidth := pw - 32
	y := optionsTop - 16
	for i := len(p.messages) - 1; i >= 0 && y > 48; i-- {
		msg := p.messages[i]
		lines := utils.WrapText(msg.Text, p.face, maxWidth-2*bubblePadX)
		bubbleH := float64(len(lines))*lineH + 2*bubblePadY
		y -= bubbleH + 8

		bg := dashaBg
		if msg.FromPlayer {
			bg = playerBg
		}
		vector.DrawFilledRect(screen, float32(px+12), float32(y), float32(pw-24), float32(bubbleH), bg, false)

		ty := y + bubblePadY
		for _, line := range lines {
			p.drawLine(screen, line, px+12+bubblePadX, ty)
			ty += lineH
		}
	}

	// 选项按钮
	oy := optionsTop
	for _, opt := range p.options {
		vector.DrawFilledRect(screen, float32(px+12), float32(oy), float32(pw-24), float32(optionH), optionBg, false)
		p.drawLine(screen, opt.Label, px+20, oy+8)
		p.optionRects = append(p.optionRects, optionRect{x: px + 12, y: oy, w: pw - 24, h: optionH})
		oy += optionH + 8
	}
}

// drawLine 绘制一行文本，字体缺失时用调试字体
func (p *Panel) drawLine(screen *ebiten.Image, str string, x, y float64) {
	if p.face == nil {
		// 调试字体不支持西里尔字母，但至少能看到有内容
		vector.DrawFilledRect(screen, float32(x), float32(y+6), float32(len(str))*3, 2, chatText, false)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(chatText)
	text.Draw(screen, str, p.face, op)
}
