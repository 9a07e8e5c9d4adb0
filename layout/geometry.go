package layout

import "math"

// 所有几何量均为像素。模板会先等比缩放到 TemplateWidth 再参与规划。
const (
	TemplateWidth = 800

	PhotoLeft   = 40 // 头像左边距
	photoGap    = 20 // 头像与文字块的间距
	lineGap     = 20 // 文字块/分隔线/logo 之间的间距
	RightMargin = 24

	DividerWidth  = 4
	FooterPadding = 40
	minTextWidth  = 120
)

// Plan 根据缩放后的模板宽度计算一张海报的几何布局。纯函数，同一宽度恒得同一结果。
func Plan(width int) Geometry {
	photoSize := width * 18 / 100
	fontSizeBase := int(math.Round(float64(width) * 0.022))
	logoSize := width * 15 / 100

	textLeft := PhotoLeft + photoSize + photoGap

	// 右侧为分隔线、间距、logo 与右边距保守预留空间
	reserved := DividerWidth + lineGap + logoSize + RightMargin
	textWidth := width - textLeft - reserved
	if alt := width * 38 / 100; alt > textWidth {
		textWidth = alt
	}
	if textWidth < minTextWidth {
		// 过窄模板兜底：保证文字块不会塌缩到不可用的宽度
		textWidth = width * 35 / 100
		if textWidth < minTextWidth {
			textWidth = minTextWidth
		}
	}

	lineHeight := int(math.Round(float64(fontSizeBase) * lineHeightFactor))
	requiredTextHeight := lineHeight * LineCount
	footerHeight := photoSize
	if requiredTextHeight > footerHeight {
		footerHeight = requiredTextHeight
	}
	if logoSize > footerHeight {
		footerHeight = logoSize
	}
	footerHeight += FooterPadding

	g := Geometry{
		TemplateWidth: width,
		PhotoSize:     photoSize,
		FontSizeBase:  fontSizeBase,
		LogoSize:      logoSize,
		PhotoLeft:     PhotoLeft,
		TextLeft:      textLeft,
		TextWidth:     textWidth,
		FooterHeight:  footerHeight,
		LineWidth:     DividerWidth,
	}
	// 初始位置按预留的 textWidth 估算，渲染后由 Placement 收紧
	g.LineX, g.LogoX = g.Placement(textWidth)
	return g
}

// Placement 根据实际渲染出的文本宽度（inkWidth）收紧分隔线与 logo 的横向位置。
// 保证返回的 logoX 不超过 width−logoSize−rightMargin，文本再宽也不会把 logo 挤出右边距。
func (g Geometry) Placement(inkWidth int) (lineX, logoX int) {
	lineX = g.TextLeft + inkWidth + lineGap
	logoX = lineX + g.LineWidth + lineGap
	maxLogoX := g.TemplateWidth - g.LogoSize - RightMargin
	if logoX > maxLogoX {
		logoX = maxLogoX
		lineX = logoX - lineGap - g.LineWidth
	}
	if lineX < g.TextLeft {
		lineX = g.TextLeft
	}
	return lineX, logoX
}
