package layout

import "strings"

// Brand 追加在规范化职位之后的品牌名。
const Brand = "WealthPlus"

// DefaultTagline 是第三行的固定宣传语，包含三个对勾符号项。
// 渲染器必须为 ✅ 提供符号字体回退，否则这一行会悄悄变成空白。
const DefaultTagline = "✅ Expert Guidance ✅ Tailored Plans ✅ Lifetime Support"

const (
	// LineCount 是页脚文本的固定行数：姓名、职位/团队、宣传语、电话。
	LineCount = 4

	// TextPadding 是文字块左右两侧的内边距（px）。
	TextPadding = 2

	// MinFontSize 是缩字号循环的下限：宁可溢出也不渲染更小的字。
	MinFontSize      = 12
	minStartFontSize = 18

	lineHeightFactor = 1.5
	shrinkFactor     = 0.92
	// charWidthFactor 为平均字形宽度系数。刻意采用近似估算而非真实测量，
	// 以保证结果确定且与渲染后端无关。
	charWidthFactor = 0.55
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape 将标记敏感字符转义为实体，必须在测量与渲染之前完成，
// 否则原始输入会破坏基于标记的渲染后端。
func Escape(s string) string {
	return escaper.Replace(s)
}

// ResolveRole 将 designation/teamName 解析为带标签的展示角色。
// teamName 非空时原样使用；否则若 designation 中含有逗号连接的
// "Team: X" 片段，取最后一个作为团队标签；再否则按职位处理。
func ResolveRole(designation, teamName string) DisplayRole {
	if t := strings.TrimSpace(teamName); t != "" {
		return DisplayRole{Kind: RoleTeam, Value: t}
	}
	if tok, ok := lastTeamToken(designation); ok {
		return DisplayRole{Kind: RoleTeam, Value: tok}
	}
	return DisplayRole{Kind: RoleDesignation, Value: designation}
}

func lastTeamToken(s string) (string, bool) {
	var found string
	var ok bool
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if len(p) >= 5 && strings.EqualFold(p[:5], "team:") {
			found = p
			ok = true
		}
	}
	return found, ok
}

// FormatDesignation 按子串规则（不区分大小写）规范化职位并追加品牌：
// 含 wealth → 财富经理，含 health → 健康险顾问，空值 → N/A，其余压缩空白后原样保留。
func FormatDesignation(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return "N/A | " + Brand
	}
	lower := strings.ToLower(t)
	switch {
	case strings.Contains(lower, "wealth"):
		return "Wealth Manager | " + Brand
	case strings.Contains(lower, "health"):
		return "Health Insurance Advisor | " + Brand
	}
	return strings.Join(strings.Fields(t), " ") + " | " + Brand
}

// roleLine 产出第二行文本：团队名原样，职位走规范化。
func roleLine(role DisplayRole) string {
	if role.Kind == RoleTeam {
		return role.Value
	}
	return FormatDesignation(role.Value)
}

// Fit 为固定的四行文本选择字号与行高，使估算宽度不超过 geo.TextWidth。
// baseFontSize <= 0 时取 geo.FontSizeBase。缩字号循环单调递减，
// 到达 MinFontSize 即停止，此时接受溢出而不是继续缩小到不可读。
func Fit(name string, role DisplayRole, tagline, phone string, geo Geometry, baseFontSize int) FittedText {
	if baseFontSize <= 0 {
		baseFontSize = geo.FontSizeBase
	}
	if tagline == "" {
		tagline = DefaultTagline
	}

	lines := [LineCount]string{
		Escape(name),
		Escape(roleLine(role)),
		Escape(tagline),
		Escape("Phone: " + phone),
	}

	longest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}

	size := baseFontSize
	if size < minStartFontSize {
		size = minStartFontSize
	}
	limit := float64(geo.TextWidth - 2*TextPadding)
	for size > MinFontSize && float64(longest)*float64(size)*charWidthFactor > limit {
		size = int(float64(size) * shrinkFactor)
		if size < MinFontSize {
			size = MinFontSize
		}
	}

	return FittedText{
		Lines:      lines,
		FontSize:   size,
		LineHeight: roundLineHeight(size),
	}
}

func roundLineHeight(fontSize int) int {
	// round(size × 1.5)，size 为整数时等价于向上取整到最近的 0.5 倍
	return (fontSize*3 + 1) / 2
}
