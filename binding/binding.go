// Package binding 将宣传语模板中的 ${field} 占位符替换为人员字段值。
package binding

import (
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${field} 替换为 fields 中对应的值。
// 字段不存在或 fields 为空时保留原占位符。
func Interpolate(text string, fields map[string]string) string {
	if len(fields) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		key := strings.TrimSpace(groups[1])
		if key == "" {
			return match
		}
		if val, ok := fields[key]; ok {
			return val
		}
		return match
	})
}
