package poster

import "fmt"

// ValidationError 表示输入校验失败：必填字段缺失，或输入路径不可访问。
// 不重试，直接返回给调用方并指明出错的字段/路径。
type ValidationError struct {
	Field string
	Path  string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("输入路径不可用（%s）: %s: %v", e.Field, e.Path, e.Err)
	}
	return fmt.Sprintf("缺少必填字段: %s", e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Stage 标识装配流水线中出错的阶段，便于调用方区分
// “输入有问题”与“渲染管线有问题”。
type Stage string

const (
	StageTemplate Stage = "template" // 模板解码/缩放
	StagePhoto    Stage = "photo"    // 头像解码/圆形裁剪
	StageLogo     Stage = "logo"     // logo 解码/压扁
	StageText     Stage = "text"     // 文字图层渲染
	StageEncode   Stage = "encode"   // 编码或写出
)

// StageError 包装某一阶段的失败。任何阶段失败都会立即中止整个调用，
// 不产生部分写入的输出文件。
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s 阶段失败: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
