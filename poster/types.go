package poster

import (
	"os"
	"strings"
)

// PersonInfo 是一次装配所需的人员信息，仅在单次调用期间有效，引擎不持久化。
type PersonInfo struct {
	Name        string
	Designation string // 职位，自由文本；与 TeamName 在展示上互斥
	Phone       string
	TeamName    string // 非空时第二行原样展示团队名
	Photo       string // 本地可读的头像图片路径
}

// Request 描述一次海报装配调用的全部输入，使用后即丢弃。
type Request struct {
	Template string // 模板背景图路径
	Logo     string // logo 图路径
	Output   string // 输出 JPEG 路径
	Person   PersonInfo

	// Tagline 可选：自定义宣传语模板，支持 ${name} 等占位符；
	// 为空时使用固定的默认宣传语。
	Tagline string
	// BaseFontSize 可选：请求的基础字号（px），<=0 时按几何规划取值。
	BaseFontSize int
}

// Validate 检查必填字段与输入路径。姓名、头像、职位或团队名缺一不可，
// 三个输入图片路径必须存在且可访问。
func (r Request) Validate() error {
	p := r.Person
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(p.Photo) == "" {
		return &ValidationError{Field: "photo"}
	}
	if strings.TrimSpace(p.Designation) == "" && strings.TrimSpace(p.TeamName) == "" {
		return &ValidationError{Field: "designation"}
	}
	for _, in := range []struct{ field, path string }{
		{"template", r.Template},
		{"photo", p.Photo},
		{"logo", r.Logo},
	} {
		if in.path == "" {
			return &ValidationError{Field: in.field}
		}
		if _, err := os.Stat(in.path); err != nil {
			return &ValidationError{Field: in.field, Path: in.path, Err: err}
		}
	}
	return nil
}
