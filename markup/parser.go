// Package markup 解析页脚文本使用的受限标记：纯文本、五个命名实体
// （&amp; &lt; &gt; &quot; &#39;）以及 <i>/<b> 两种样式跨度。
// 文字适配阶段已把所有敏感字符转义成实体，因此任何裸露的 < 或 &
// 都会在词法阶段报错，而不是悄悄渲染出损坏的文本。
package markup

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "OpenItalic", Pattern: `<i>`},
		{Name: "CloseItalic", Pattern: `</i>`},
		{Name: "OpenBold", Pattern: `<b>`},
		{Name: "CloseBold", Pattern: `</b>`},
		{Name: "Entity", Pattern: `&(?:amp|lt|gt|quot|#39);`},
		{Name: "Text", Pattern: `[^<&]+`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(markupLexer),
	)

	entities = map[string]string{
		"&amp;":  "&",
		"&lt;":   "<",
		"&gt;":   ">",
		"&quot;": `"`,
		"&#39;":  "'",
	}
)

// Document 是标记串的根节点。
type Document struct {
	Nodes []*Node `parser:"@@*"`
}

// Node 是一个叶子（文本/实体）或一个样式跨度。
type Node struct {
	Entity *Entity   `parser:"  @Entity"`
	Text   *string   `parser:"| @Text"`
	Italic *Document `parser:"| OpenItalic @@ CloseItalic"`
	Bold   *Document `parser:"| OpenBold @@ CloseBold"`
}

// Entity 在捕获时解码为原始字符。
type Entity string

// Capture implements participle.Capture.
func (e *Entity) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("entity capture requires value")
	}
	decoded, ok := entities[values[0]]
	if !ok {
		return fmt.Errorf("未知实体 %s", values[0])
	}
	*e = Entity(decoded)
	return nil
}

// Span 是展平后的一段同样式文本，实体已解码。
type Span struct {
	Text   string
	Italic bool
	Bold   bool
}

// Parse 将一行标记展平为样式跨度序列。相邻同样式的叶子会合并，
// 因此渲染器可以逐跨度选择字体面绘制。
func Parse(input string) ([]Span, error) {
	doc, err := documentParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("解析页脚标记失败: %w", err)
	}
	var spans []Span
	flatten(doc, false, false, &spans)
	return spans, nil
}

// PlainText 返回解码后的纯文本（丢弃样式），供直接绘制后端使用。
func PlainText(input string) (string, error) {
	spans, err := Parse(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String(), nil
}

// Italicize 把一行已转义的文本包进斜体跨度。
func Italicize(s string) string { return "<i>" + s + "</i>" }

// Embolden 把一行已转义的文本包进粗体跨度。
func Embolden(s string) string { return "<b>" + s + "</b>" }

func flatten(doc *Document, italic, bold bool, out *[]Span) {
	if doc == nil {
		return
	}
	for _, n := range doc.Nodes {
		switch {
		case n.Entity != nil:
			appendSpan(out, string(*n.Entity), italic, bold)
		case n.Text != nil:
			appendSpan(out, *n.Text, italic, bold)
		case n.Italic != nil:
			flatten(n.Italic, true, bold, out)
		case n.Bold != nil:
			flatten(n.Bold, italic, true, out)
		}
	}
}

func appendSpan(out *[]Span, text string, italic, bold bool) {
	if text == "" {
		return
	}
	if n := len(*out); n > 0 {
		last := &(*out)[n-1]
		if last.Italic == italic && last.Bold == bold {
			last.Text += text
			return
		}
	}
	*out = append(*out, Span{Text: text, Italic: italic, Bold: bold})
}
