package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// 内置字体资源路径。Bold/BoldItalic 覆盖正文，NotoEmoji 负责宣传语中的
// 对勾等符号字形——正文字体没有这些码位，缺少回退时这一行会静默空白。
const (
	BoldFont       = "Inter/static/Inter-Bold.ttf"
	BoldItalicFont = "Inter/static/Inter-BoldItalic.ttf"
	SymbolFont     = "NotoEmoji/NotoEmoji-Regular.ttf"
)

// ResourceError 表示字体资源缺失或无法解析，属于配置错误：
// 引擎在初始化阶段就应当大声失败，而不是退回系统字体后渲染出空白文本。
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("字体资源 %s 不可用: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Set 是进程启动时构建一次的只读字体集。构建后不再修改，
// 可被任意数量的并发装配调用共享。
type Set struct {
	BoldData       []byte
	BoldItalicData []byte
	SymbolData     []byte

	bold       *truetype.Font
	boldItalic *truetype.Font
	symbol     *truetype.Font
}

// NewSet 加载并解析全部内置字体变体。任何一个缺失或损坏都会返回
// 指明资源的 ResourceError，此时引擎应拒绝处理任何请求。
func NewSet() (*Set, error) {
	s := &Set{}
	for _, res := range []struct {
		path   string
		data   *[]byte
		parsed **truetype.Font
	}{
		{BoldFont, &s.BoldData, &s.bold},
		{BoldItalicFont, &s.BoldItalicData, &s.boldItalic},
		{SymbolFont, &s.SymbolData, &s.symbol},
	} {
		data, err := Load(res.path)
		if err != nil {
			return nil, err
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, &ResourceError{Resource: res.path, Err: err}
		}
		*res.data = data
		*res.parsed = f
	}
	return s, nil
}

// Covers 报告正文字体是否含有该字符的字形，用于决定是否切换到符号字体。
func (s *Set) Covers(r rune) bool {
	return s.bold.Index(r) != 0
}

// Face 返回指定字号的正文字体面。truetype 的 face 不可并发使用，
// 因此每次渲染调用都新建，Set 本身保持只读。
func (s *Set) Face(size float64, italic bool) font.Face {
	f := s.bold
	if italic {
		f = s.boldItalic
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// SymbolFace 返回指定字号的符号字体面。
func (s *Set) SymbolFace(size float64) font.Face {
	return truetype.NewFace(s.symbol, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}
