package overlay

import (
	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/game"
	"github.com/decker502/roomquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CarouselOverlay 横向选择面板：唱片箱、书架、照片墙
//
// 左右箭头（或方向键）在条目间循环移动，点击中间区域（或回车）
// 选中当前条目，以 ExitSelected 关闭并带回条目 ID。
// 场景根据条目类型决定后续动作：唱片交给音乐系统，书和照片
// 转入查看面板。
type CarouselOverlay struct {
	base
	items []config.CarouselItem
	rm    *game.ResourceManager
	face  *text.GoTextFace

	index int
	guard float64
}

// NewCarouselOverlay 创建选择面板
// items 被拷贝一份，构造后不再修改
func NewCarouselOverlay(items []config.CarouselItem, rm *game.ResourceManager, face *text.GoTextFace) *CarouselOverlay {
	return &CarouselOverlay{
		items: append([]config.CarouselItem(nil), items...),
		rm:    rm,
		face:  face,
	}
}

// Open 打开面板，从第一个条目开始
// 已打开时是无操作，不重置当前位置
func (cv *CarouselOverlay) Open(done func(Result)) {
	if cv.opened {
		return
	}
	cv.index = 0
	cv.guard = 0.1
	cv.base.Open(done)
}

// CurrentItem 返回当前指向的条目
func (cv *CarouselOverlay) CurrentItem() config.CarouselItem {
	if len(cv.items) == 0 {
		return config.CarouselItem{}
	}
	return cv.items[cv.index]
}

// Next 移到下一个条目（末尾绕回开头）
func (cv *CarouselOverlay) Next() {
	if len(cv.items) == 0 {
		return
	}
	cv.index = (cv.index + 1) % len(cv.items)
}

// Prev 移到上一个条目（开头绕回末尾）
func (cv *CarouselOverlay) Prev() {
	if len(cv.items) == 0 {
		return
	}
	cv.index = (cv.index - 1 + len(cv.items)) % len(cv.items)
}

// Select 选中当前条目并关闭
func (cv *CarouselOverlay) Select() {
	if !cv.opened || len(cv.items) == 0 {
		return
	}
	cv.exit(Result{Code: ExitSelected, Item: cv.items[cv.index].ID})
}

// Update 处理翻页和选中输入
func (cv *CarouselOverlay) Update(deltaTime float64) {
	if !cv.opened {
		return
	}

	if cv.guard > 0 {
		cv.guard -= deltaTime
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cv.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		cv.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cv.Select()
	}

	input := utils.GetInputState()
	if !input.JustPressed {
		return
	}

	px, py, pw, ph := cv.panelRect()
	arrowW := 80.0
	switch {
	case pointInRect(input.X, input.Y, px, py, arrowW, ph):
		cv.Prev()
	case pointInRect(input.X, input.Y, px+pw-arrowW, py, arrowW, ph):
		cv.Next()
	case pointInRect(input.X, input.Y, px+arrowW, py, pw-2*arrowW, ph):
		cv.Select()
	}
}

func (cv *CarouselOverlay) panelRect() (x, y, w, h float64) {
	w = 560.0
	h = 400.0
	x = (config.PlayfieldWidth - w) / 2
	y = (float64(config.GameWindowHeight) - h) / 2
	return x, y, w, h
}

// Draw 绘制选择面板
func (cv *CarouselOverlay) Draw(screen *ebiten.Image) {
	if !cv.opened {
		return
	}

	drawDim(screen)

	px, py, pw, ph := cv.panelRect()
	drawPanel(screen, float32(px), float32(py), float32(pw), float32(ph))

	cx := px + pw/2
	drawLabelCentered(screen, cv.face, "<", px+40, py+ph/2-12, textColor)
	drawLabelCentered(screen, cv.face, ">", px+pw-40, py+ph/2-12, textColor)

	item := cv.CurrentItem()

	// 封面图，缺失时只显示名字
	if cv.rm != nil && item.Image != "" {
		if img := cv.rm.LoadImageOrNil(item.Image); img != nil {
			bounds := img.Bounds()
			iw := float64(bounds.Dx())
			ih := float64(bounds.Dy())
			maxW, maxH := pw-200, ph-120
			scale := 1.0
			if iw > maxW {
				scale = maxW / iw
			}
			if ih*scale > maxH {
				scale = maxH / ih
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(cx-iw*scale/2, py+30)
			screen.DrawImage(img, op)
		}
	}

	drawLabelCentered(screen, cv.face, item.Name, cx, py+ph-56, textColor)
}
