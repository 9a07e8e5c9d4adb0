package layout

import (
	"encoding/json"
	"os"
)

// DebugInfo 汇总一次装配的布局决策，便于排查对齐与溢出问题。
type DebugInfo struct {
	Geometry Geometry   `json:"geometry"`
	Text     FittedText `json:"text"`
	InkWidth int        `json:"inkWidth"`
	LineX    int        `json:"lineX"`
	LogoX    int        `json:"logoX"`
}

// WriteDebugJSON 将布局决策输出为 JSON，便于调试或可视化。
func WriteDebugJSON(info DebugInfo, path string) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
