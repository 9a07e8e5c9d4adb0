package layout

// 该文件定义几何规划与文字适配的结果类型，供布局计算、渲染与调试 JSON 共用。

// Geometry 保存一张海报的完整像素布局，基于缩放后的模板宽度一次性算出，之后不再修改。
type Geometry struct {
	TemplateWidth int `json:"templateWidth"`
	PhotoSize     int `json:"photoSize"`
	FontSizeBase  int `json:"fontSizeBase"`
	LogoSize      int `json:"logoSize"`
	PhotoLeft     int `json:"photoLeft"`
	TextLeft      int `json:"textLeft"`
	TextWidth     int `json:"textWidth"`
	FooterHeight  int `json:"footerHeight"`
	LineWidth     int `json:"lineWidth"`
	// LineX/LogoX 为按预留宽度估算的初始位置；实际渲染宽度确定后
	// 需要调用 Placement 收紧。
	LineX int `json:"lineX"`
	LogoX int `json:"logoX"`
}

// FittedText 是文字适配的结果：四行已转义的文本与最终选定的字号、行高。
type FittedText struct {
	Lines      [4]string `json:"lines"`
	FontSize   int       `json:"fontSize"`
	LineHeight int       `json:"lineHeight"`
}

// RoleKind 区分第二行文本的两种来源：职位（需要规范化）或团队名（原样展示）。
type RoleKind int

const (
	RoleDesignation RoleKind = iota
	RoleTeam
)

// DisplayRole 是带标签的角色变体，由装配器在进入文字适配前解析一次，
// 避免在多个函数签名间传布尔开关。
type DisplayRole struct {
	Kind  RoleKind `json:"kind"`
	Value string   `json:"value"`
}
