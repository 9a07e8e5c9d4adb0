// Package canvasrenderer 是基于标记栅格化的页脚渲染后端：
// 每行已转义的文本经 markup 解析为样式跨度，再用 github.com/tdewolff/canvas
// 排布并栅格化为像素图层。
package canvasrenderer

import (
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/affiche/fonts"
	"github.com/ByLCY/affiche/layout"
	"github.com/ByLCY/affiche/markup"
	"github.com/ByLCY/affiche/renderer"
)

// canvas 的字号以 pt 计，画布单位按 mm 处理；以 1 单位 = 1px 栅格化，
// 因此像素字号需在边界做一次 px(mm)→pt 换算。
const (
	ptToMm = 0.352777
	mmToPt = 1.0 / ptToMm
)

// Renderer 持有从只读字体集构建的 canvas 字体族，可并发使用。
type Renderer struct {
	fonts  *fonts.Set
	text   *canvas.FontFamily
	symbol *canvas.FontFamily
}

var _ renderer.TextRenderer = (*Renderer)(nil)

// NewRenderer 从字体集构建正文（粗体/粗斜体）与符号两个字体族。
// 字体数据无法装载同样视为配置错误，返回指明资源的 ResourceError。
func NewRenderer(set *fonts.Set) (*Renderer, error) {
	text := canvas.NewFontFamily("Inter")
	if err := text.LoadFont(set.BoldData, 0, canvas.FontBold); err != nil {
		return nil, &fonts.ResourceError{Resource: fonts.BoldFont, Err: err}
	}
	if err := text.LoadFont(set.BoldItalicData, 0, canvas.FontBold|canvas.FontItalic); err != nil {
		return nil, &fonts.ResourceError{Resource: fonts.BoldItalicFont, Err: err}
	}
	symbol := canvas.NewFontFamily("NotoEmoji")
	if err := symbol.LoadFont(set.SymbolData, 0, canvas.FontRegular); err != nil {
		return nil, &fonts.ResourceError{Resource: fonts.SymbolFont, Err: err}
	}
	return &Renderer{fonts: set, text: text, symbol: symbol}, nil
}

// Render 输出 (width, height) 的透明文字图层。第二行（职位/团队）
// 包一层 <i> 跨度以斜体区分；其余样式均为粗体。
func (r *Renderer) Render(text layout.FittedText, width, height int) (*renderer.Layer, error) {
	c := canvas.New(float64(width), float64(height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	sizePt := float64(text.FontSize) * mmToPt
	baselines := renderer.Baselines(text, height)
	ink := canvas.RGBA(float64(renderer.Ink.R)/255.0, float64(renderer.Ink.G)/255.0, float64(renderer.Ink.B)/255.0, 1.0)

	maxAdvance := 0.0
	for i, line := range text.Lines {
		if i == 1 {
			line = markup.Italicize(line)
		}
		spans, err := markup.Parse(line)
		if err != nil {
			return nil, err
		}

		x := float64(layout.TextPadding)
		for _, span := range spans {
			style := canvas.FontBold
			if span.Italic {
				style |= canvas.FontItalic
			}
			for _, run := range renderer.SplitRuns(span.Text, r.fonts.Covers) {
				face := r.text.Face(sizePt, ink, style, canvas.FontNormal)
				if run.Symbol {
					face = r.symbol.Face(sizePt, ink, canvas.FontRegular, canvas.FontNormal)
				}
				ctx.DrawText(x, baselines[i], canvas.NewTextLine(face, run.Text, canvas.Left))
				x += face.TextWidth(run.Text)
			}
		}
		if adv := x - layout.TextPadding; adv > maxAdvance {
			maxAdvance = adv
		}
	}

	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	return &renderer.Layer{Image: img, InkWidth: int(math.Ceil(maxAdvance))}, nil
}
