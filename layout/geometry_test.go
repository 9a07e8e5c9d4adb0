package layout

import "testing"

// TestPlanAt800 固定 800px 模板宽度下的几何基线值，改动常量时这里会先响。
func TestPlanAt800(t *testing.T) {
	g := Plan(800)
	if g.PhotoSize != 144 {
		t.Fatalf("photoSize 期望 144，实际 %d", g.PhotoSize)
	}
	if g.FontSizeBase != 18 {
		t.Fatalf("fontSizeBase 期望 18，实际 %d", g.FontSizeBase)
	}
	if g.LogoSize != 120 {
		t.Fatalf("logoSize 期望 120，实际 %d", g.LogoSize)
	}
	if g.TextLeft != 204 {
		t.Fatalf("textLeft 期望 204，实际 %d", g.TextLeft)
	}
	// width − textLeft − reserved = 800 − 204 − (4+20+120+24) = 428 > floor(800×0.38)
	if g.TextWidth != 428 {
		t.Fatalf("textWidth 期望 428，实际 %d", g.TextWidth)
	}
	// max(photo 144, text 27×4=108, logo 120) + 40
	if g.FooterHeight != 184 {
		t.Fatalf("footerHeight 期望 184，实际 %d", g.FooterHeight)
	}
}

// TestPlanIsPure 同一宽度必须恒得同一结果。
func TestPlanIsPure(t *testing.T) {
	if Plan(800) != Plan(800) {
		t.Fatalf("Plan 对相同宽度给出了不同结果")
	}
}

// TestNarrowTemplateTextWidthFloor 过窄模板下文字宽度兜底到 120。
func TestNarrowTemplateTextWidthFloor(t *testing.T) {
	g := Plan(300)
	if g.TextWidth != 120 {
		t.Fatalf("窄模板 textWidth 期望兜底 120，实际 %d", g.TextWidth)
	}
}

// TestPlacementClampsLogo 无论实际文本多宽，logo 都不得越过右边距。
func TestPlacementClampsLogo(t *testing.T) {
	g := Plan(800)
	max := g.TemplateWidth - g.LogoSize - RightMargin
	for _, ink := range []int{0, 50, g.TextWidth, g.TextWidth * 3, 10000} {
		lineX, logoX := g.Placement(ink)
		if logoX > max {
			t.Fatalf("inkWidth=%d 时 logoX=%d 超过上限 %d", ink, logoX, max)
		}
		if lineX >= logoX {
			t.Fatalf("inkWidth=%d 时分隔线 %d 未处于 logo %d 左侧", ink, lineX, logoX)
		}
	}
}

// TestPlacementTightensToInk 文本实际更窄时，分隔线应随之左移。
func TestPlacementTightensToInk(t *testing.T) {
	g := Plan(800)
	narrowLine, _ := g.Placement(100)
	wideLine, _ := g.Placement(g.TextWidth)
	if narrowLine >= wideLine {
		t.Fatalf("较窄文本的分隔线位置 %d 应小于较宽文本的 %d", narrowLine, wideLine)
	}
}
