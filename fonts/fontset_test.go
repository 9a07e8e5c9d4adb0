package fonts

import (
	"errors"
	"testing"
)

// TestLoadUnknownResourceNamesIt 缺失的字体资源错误必须指明资源路径。
func TestLoadUnknownResourceNamesIt(t *testing.T) {
	_, err := Load("embed:Nope/Missing.ttf")
	var rerr *ResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("期望 ResourceError，实际 %v", err)
	}
	if rerr.Resource != "Nope/Missing.ttf" {
		t.Fatalf("期望指明资源 Nope/Missing.ttf，实际 %q", rerr.Resource)
	}
}

// TestNewSetBuildsAllVariants 字体集在启动时一次性构建全部变体。
func TestNewSetBuildsAllVariants(t *testing.T) {
	set, err := NewSet()
	if err != nil {
		t.Fatalf("NewSet error: %v", err)
	}
	if !set.Covers('A') {
		t.Fatalf("正文字体应覆盖拉丁字母")
	}
	// 对勾符号不在正文字体里，必须走符号字体回退
	if set.Covers('✅') {
		t.Fatalf("正文字体不应覆盖 ✅，否则回退链形同虚设")
	}
	if set.Face(18, false) == nil || set.Face(18, true) == nil || set.SymbolFace(18) == nil {
		t.Fatalf("字体面构建失败")
	}
}
