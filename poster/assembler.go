// Package poster 装配最终海报：模板在上，页脚条带在下，
// 页脚依次排布圆形头像、四行文字、分隔线与 logo。
package poster

import (
	"bytes"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"

	"github.com/ByLCY/affiche/binding"
	"github.com/ByLCY/affiche/layout"
	"github.com/ByLCY/affiche/raster"
	"github.com/ByLCY/affiche/renderer"
)

// 固定配色：页脚浅底、深藏青分隔线、白色页面底。
var (
	footerBackground = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	dividerColor     = color.NRGBA{R: 41, G: 45, B: 108, A: 255}
	pageBackground   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const jpegQuality = 90

// Assembler 持有一个文字渲染后端。自身无可变状态，
// 可被任意数量的并发装配调用共享，由调用方控制并行度。
type Assembler struct {
	text renderer.TextRenderer
}

// NewAssembler 构建装配器。渲染后端在进程启动时选定一次。
func NewAssembler(text renderer.TextRenderer) *Assembler {
	return &Assembler{text: text}
}

// AssemblePoster 执行单遍严格有序的装配流水线并把 JPEG 写到 req.Output。
// 任何阶段失败都立刻中止且不留下部分文件；相同输入重复调用产生相同结果。
func (a *Assembler) AssemblePoster(req Request) error {
	final, _, err := a.Compose(req)
	if err != nil {
		return err
	}
	return WriteJPEG(final, req.Output)
}

// Compose 执行到编码前为止的全部装配步骤，返回最终画布与布局决策。
// 需要拿到字节或调试信息的调用方用它代替 AssemblePoster。
func (a *Assembler) Compose(req Request) (*image.NRGBA, layout.DebugInfo, error) {
	var dbg layout.DebugInfo
	if err := req.Validate(); err != nil {
		return nil, dbg, err
	}

	// 模板缩放到固定工作宽度，之后的一切几何都基于缩放后的尺寸
	tmplSrc, err := raster.Open(req.Template)
	if err != nil {
		return nil, dbg, &StageError{Stage: StageTemplate, Err: err}
	}
	tmpl := raster.ResizeToWidth(tmplSrc, layout.TemplateWidth)
	tmplWidth := tmpl.Bounds().Dx()
	tmplHeight := tmpl.Bounds().Dy()

	geo := layout.Plan(tmplWidth)
	role := layout.ResolveRole(req.Person.Designation, req.Person.TeamName)

	tagline := req.Tagline
	if tagline != "" {
		tagline = binding.Interpolate(tagline, map[string]string{
			"name":        req.Person.Name,
			"phone":       req.Person.Phone,
			"designation": req.Person.Designation,
			"team":        req.Person.TeamName,
		})
	}

	fitted := layout.Fit(req.Person.Name, role, tagline, req.Person.Phone, geo, req.BaseFontSize)
	layer, err := a.text.Render(fitted, geo.TextWidth, geo.FooterHeight)
	if err != nil {
		return nil, dbg, &StageError{Stage: StageText, Err: err}
	}

	photoSrc, err := raster.Open(req.Person.Photo)
	if err != nil {
		return nil, dbg, &StageError{Stage: StagePhoto, Err: err}
	}
	photo := raster.CircleCrop(photoSrc, geo.PhotoSize)

	logoSrc, err := raster.Open(req.Logo)
	if err != nil {
		return nil, dbg, &StageError{Stage: StageLogo, Err: err}
	}
	logo := raster.FlattenSquare(logoSrc, geo.LogoSize, footerBackground)

	// 第二遍定位：按实际渲染宽度收紧分隔线与 logo
	lineX, logoX := geo.Placement(layer.InkWidth)

	band := imaging.New(tmplWidth, geo.FooterHeight, footerBackground)
	band = imaging.Overlay(band, photo, image.Pt(geo.PhotoLeft, (geo.FooterHeight-geo.PhotoSize)/2), 1.0)
	band = imaging.Overlay(band, layer.Image, image.Pt(geo.TextLeft, 0), 1.0)

	dividerHeight := geo.FooterHeight - 2*layout.FooterPadding
	if min := geo.FooterHeight / 2; dividerHeight < min {
		dividerHeight = min
	}
	divider := imaging.New(geo.LineWidth, dividerHeight, dividerColor)
	band = imaging.Paste(band, divider, image.Pt(lineX, (geo.FooterHeight-dividerHeight)/2))
	band = imaging.Paste(band, logo, image.Pt(logoX, (geo.FooterHeight-geo.LogoSize)/2))

	final := imaging.New(tmplWidth, tmplHeight+geo.FooterHeight, pageBackground)
	final = imaging.Paste(final, tmpl, image.Pt(0, 0))
	final = imaging.Paste(final, band, image.Pt(0, tmplHeight))

	dbg = layout.DebugInfo{
		Geometry: geo,
		Text:     fitted,
		InkWidth: layer.InkWidth,
		LineX:    lineX,
		LogoX:    logoX,
	}
	return final, dbg, nil
}

// WriteJPEG 先整体编码进内存，再一次性写文件——失败时输出路径上不会留下半个文件。
func WriteJPEG(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return &StageError{Stage: StageEncode, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &StageError{Stage: StageEncode, Err: err}
	}
	return nil
}
