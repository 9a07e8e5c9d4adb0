package fonts

import (
	"embed"
	"strings"
)

//go:embed Inter/static/*.ttf NotoEmoji/*.ttf
var fontFS embed.FS

// Load 返回内置字体的字节数据，path 可写为 "embed:Inter/static/Inter-Bold.ttf"
// 或直接 "Inter/static/Inter-Bold.ttf"。
func Load(path string) ([]byte, error) {
	target := strings.TrimPrefix(path, "embed:")
	data, err := fontFS.ReadFile(target)
	if err != nil {
		return nil, &ResourceError{Resource: target, Err: err}
	}
	return data, nil
}
