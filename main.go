package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/affiche/fonts"
	"github.com/ByLCY/affiche/layout"
	"github.com/ByLCY/affiche/poster"
	"github.com/ByLCY/affiche/renderer"
	canvasrenderer "github.com/ByLCY/affiche/renderer/canvas"
	drawrenderer "github.com/ByLCY/affiche/renderer/draw"
)

func main() {
	template := flag.String("template", "", "模板背景图路径")
	photo := flag.String("photo", "", "头像图路径")
	logo := flag.String("logo", "", "logo 图路径")
	output := flag.String("out", "output/poster.jpg", "海报 JPEG 输出路径")
	name := flag.String("name", "", "姓名")
	designation := flag.String("designation", "", "职位（与 -team 二选一）")
	team := flag.String("team", "", "团队名，非空时原样展示")
	phone := flag.String("phone", "", "电话")
	tagline := flag.String("tagline", "", "自定义宣传语模板，支持 ${name}/${phone}/${designation}/${team} 占位符")
	fontSize := flag.Int("font-size", 0, "请求的基础字号（px），0 表示按模板宽度取值")
	backend := flag.String("backend", "canvas", "文字渲染后端：canvas（标记栅格化）或 draw（直接绘制）")
	debugPath := flag.String("debug", "", "布局调试 JSON 输出路径")
	flag.Parse()

	// 字体集在进程启动时构建一次；缺失或损坏直接拒绝服务
	set, err := fonts.NewSet()
	if err != nil {
		log.Fatalf("加载字体失败: %v", err)
	}

	var text renderer.TextRenderer
	switch *backend {
	case "canvas":
		text, err = canvasrenderer.NewRenderer(set)
		if err != nil {
			log.Fatalf("构建 canvas 渲染后端失败: %v", err)
		}
	case "draw":
		text = drawrenderer.NewRenderer(set)
	default:
		log.Fatalf("未知渲染后端: %s", *backend)
	}

	req := poster.Request{
		Template: *template,
		Logo:     *logo,
		Output:   *output,
		Person: poster.PersonInfo{
			Name:        *name,
			Designation: *designation,
			Phone:       *phone,
			TeamName:    *team,
			Photo:       *photo,
		},
		Tagline:      *tagline,
		BaseFontSize: *fontSize,
	}

	if err := run(poster.NewAssembler(text), req, *debugPath); err != nil {
		log.Fatalf("生成海报失败: %v", err)
	}
	fmt.Printf("已生成海报：%s\n", *output)
}

// run 串联装配、调试输出与写文件。
func run(a *poster.Assembler, req poster.Request, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(req.Output), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	if debugPath == "" {
		return a.AssemblePoster(req)
	}

	final, dbg, err := a.Compose(req)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(dbg, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return poster.WriteJPEG(final, req.Output)
}
