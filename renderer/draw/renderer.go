// Package drawrenderer 是直接绘制的页脚渲染后端：标记仅用于解码实体，
// 字形经 github.com/fogleman/gg 逐段画到透明画布上。
// 与 canvas 后端共享全部适配与基线逻辑，只有落笔方式不同。
package drawrenderer

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/ByLCY/affiche/fonts"
	"github.com/ByLCY/affiche/layout"
	"github.com/ByLCY/affiche/markup"
	"github.com/ByLCY/affiche/renderer"
)

// Renderer 持有只读字体集。字体面不可并发使用，因此每次 Render 新建。
type Renderer struct {
	fonts *fonts.Set
}

var _ renderer.TextRenderer = (*Renderer)(nil)

// NewRenderer 构建直接绘制后端。
func NewRenderer(set *fonts.Set) *Renderer {
	return &Renderer{fonts: set}
}

// Render 输出 (width, height) 的透明文字图层：四行粗体，第二行斜体，
// 正文字体不覆盖的符号（宣传语对勾）切换到符号字体绘制。
func (r *Renderer) Render(text layout.FittedText, width, height int) (*renderer.Layer, error) {
	dc := gg.NewContext(width, height)
	dc.SetColor(renderer.Ink)

	size := float64(text.FontSize)
	textFace := r.fonts.Face(size, false)
	italicFace := r.fonts.Face(size, true)
	symbolFace := r.fonts.SymbolFace(size)

	baselines := renderer.Baselines(text, height)
	maxAdvance := 0.0
	for i, line := range text.Lines {
		plain, err := markup.PlainText(line)
		if err != nil {
			return nil, err
		}
		base := textFace
		if i == 1 {
			base = italicFace
		}

		x := float64(layout.TextPadding)
		for _, run := range renderer.SplitRuns(plain, r.fonts.Covers) {
			var face font.Face = base
			if run.Symbol {
				face = symbolFace
			}
			dc.SetFontFace(face)
			dc.DrawString(run.Text, x, baselines[i])
			w, _ := dc.MeasureString(run.Text)
			x += w
		}
		if adv := x - layout.TextPadding; adv > maxAdvance {
			maxAdvance = adv
		}
	}

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("渲染画布不是 RGBA 位图")
	}
	return &renderer.Layer{Image: img, InkWidth: int(math.Ceil(maxAdvance))}, nil
}
