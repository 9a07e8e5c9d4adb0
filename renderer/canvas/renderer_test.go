package canvasrenderer

import (
	"testing"

	"github.com/ByLCY/affiche/fonts"
	"github.com/ByLCY/affiche/layout"
)

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()
	set, err := fonts.NewSet()
	if err != nil {
		t.Fatalf("加载字体集失败: %v", err)
	}
	r, err := NewRenderer(set)
	if err != nil {
		t.Fatalf("构建 canvas 后端失败: %v", err)
	}
	return r
}

// TestRenderLayerDimensions 栅格化结果必须精确等于请求的像素尺寸。
func TestRenderLayerDimensions(t *testing.T) {
	r := mustRenderer(t)
	geo := layout.Plan(800)
	fitted := layout.Fit("Alice", layout.DisplayRole{Kind: layout.RoleTeam, Value: "Alpha"}, "", "123", geo, 0)

	layer, err := r.Render(fitted, geo.TextWidth, geo.FooterHeight)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := layer.Image.Bounds(); got.Dx() != geo.TextWidth || got.Dy() != geo.FooterHeight {
		t.Fatalf("图层尺寸期望 %dx%d，实际 %dx%d", geo.TextWidth, geo.FooterHeight, got.Dx(), got.Dy())
	}
	if layer.InkWidth <= 0 {
		t.Fatalf("InkWidth 期望为正，实际 %d", layer.InkWidth)
	}
}

// TestRenderSecondLineItalicized 第二行包进 <i> 跨度后仍可正常解析渲染。
func TestRenderSecondLineItalicized(t *testing.T) {
	r := mustRenderer(t)
	geo := layout.Plan(800)
	fitted := layout.Fit("A", layout.DisplayRole{Kind: layout.RoleDesignation, Value: "Wealth"}, "", "1", geo, 0)

	if _, err := r.Render(fitted, geo.TextWidth, geo.FooterHeight); err != nil {
		t.Fatalf("含斜体第二行的渲染失败: %v", err)
	}
}

// TestRenderRejectsCorruptMarkup 裸露的标记字符必须在解析阶段报错。
func TestRenderRejectsCorruptMarkup(t *testing.T) {
	r := mustRenderer(t)
	fitted := layout.FittedText{
		Lines:      [layout.LineCount]string{"ok", "ok", "a < b", "ok"},
		FontSize:   18,
		LineHeight: 27,
	}
	if _, err := r.Render(fitted, 400, 180); err == nil {
		t.Fatalf("未转义的行内容期望渲染错误")
	}
}
