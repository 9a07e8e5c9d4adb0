// Package renderer 定义页脚文字图层的渲染后端接口，以及两个后端共用的
// 基线计算与字形覆盖拆分逻辑——业务规则只在这里出现一次，后端只负责画字。
package renderer

import (
	"image"
	"image/color"

	"github.com/ByLCY/affiche/layout"
)

// Ink 是页脚文字的固定墨色（深藏青）。
var Ink = color.RGBA{R: 41, G: 45, B: 108, A: 255}

// TextRenderer 将适配好的四行文本渲染为 (width, height) 的透明图层。
type TextRenderer interface {
	Render(text layout.FittedText, width, height int) (*Layer, error)
}

// Layer 是渲染出的文字图层。InkWidth 为最宽一行的实际前进宽度（px），
// 几何规划用它做第二遍定位：先保守预留，再按实际宽度收紧分隔线与 logo。
type Layer struct {
	Image    *image.RGBA
	InkWidth int
}

// Baselines 计算四行文本各自的基线 y 坐标：行块整体垂直居中，
// 首行基线位于上边距加 0.6 倍行高处。
func Baselines(text layout.FittedText, height int) [layout.LineCount]float64 {
	lineHeight := float64(text.LineHeight)
	total := lineHeight * layout.LineCount
	pad := (float64(height) - total) / 2
	var out [layout.LineCount]float64
	for i := range out {
		out[i] = pad + lineHeight*0.6 + float64(i)*lineHeight
	}
	return out
}

// Run 是一行文本中连续使用同一字体面的片段。
type Run struct {
	Text   string
	Symbol bool // 正文字体缺字形，需要切换到符号字体
}

// SplitRuns 按字形覆盖把文本拆成正文/符号片段。covered 报告正文字体
// 是否含有该字符；宣传语中的对勾符号由此显式回退到符号字体，
// 而不是依赖渲染库的静默替换。
func SplitRuns(text string, covered func(rune) bool) []Run {
	var runs []Run
	var current []rune
	symbol := false
	flush := func() {
		if len(current) == 0 {
			return
		}
		runs = append(runs, Run{Text: string(current), Symbol: symbol})
		current = current[:0]
	}
	for _, r := range text {
		isSymbol := !covered(r)
		if len(current) > 0 && isSymbol != symbol {
			flush()
		}
		symbol = isSymbol
		current = append(current, r)
	}
	flush()
	return runs
}
