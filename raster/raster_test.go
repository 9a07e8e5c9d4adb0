package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

// TestCircleCropDimensionsAndMask N×N 输出、圆外全透明、圆心不透明。
func TestCircleCropDimensionsAndMask(t *testing.T) {
	src := uniform(50, 50, color.NRGBA{R: 200, A: 255})
	const size = 40
	out := CircleCrop(src, size)

	if b := out.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Fatalf("输出尺寸期望 %dx%d，实际 %dx%d", size, size, b.Dx(), b.Dy())
	}
	for _, pt := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		if _, _, _, a := out.At(pt[0], pt[1]).RGBA(); a != 0 {
			t.Fatalf("角点 (%d,%d) 在圆外，期望完全透明，alpha=%d", pt[0], pt[1], a)
		}
	}
	if _, _, _, a := out.At(size/2, size/2).RGBA(); a != 0xffff {
		t.Fatalf("圆心期望完全不透明，alpha=%d", a)
	}
}

// TestCircleCropNonSquareSource 非正方形源图同样裁出 size×size。
func TestCircleCropNonSquareSource(t *testing.T) {
	src := uniform(80, 30, color.NRGBA{G: 120, A: 255})
	out := CircleCrop(src, 25)
	if b := out.Bounds(); b.Dx() != 25 || b.Dy() != 25 {
		t.Fatalf("输出尺寸期望 25x25，实际 %dx%d", b.Dx(), b.Dy())
	}
}

// TestFlattenSquare 透明源图被背景色填实，结果无透明像素。
func TestFlattenSquare(t *testing.T) {
	src := uniform(10, 20, color.NRGBA{B: 255, A: 255}) // 竖长 logo
	bg := color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	out := FlattenSquare(src, 30, bg)

	if b := out.Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Fatalf("输出尺寸期望 30x30，实际 %dx%d", b.Dx(), b.Dy())
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if _, _, _, a := out.At(x, y).RGBA(); a != 0xffff {
				t.Fatalf("(%d,%d) 期望不透明，alpha=%d", x, y, a)
			}
		}
	}
	// 左上角落在 logo 之外，应为背景色
	if c := out.NRGBAAt(0, 0); c != bg {
		t.Fatalf("角点期望背景色 %+v，实际 %+v", bg, c)
	}
}

// TestResizeToWidth 等比缩放保持纵横比。
func TestResizeToWidth(t *testing.T) {
	src := uniform(100, 50, color.NRGBA{R: 9, A: 255})
	out := ResizeToWidth(src, 80)
	if b := out.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Fatalf("缩放结果期望 80x40，实际 %dx%d", b.Dx(), b.Dy())
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("/no/such/image.png"); err == nil {
		t.Fatalf("不存在的路径期望错误")
	}
}
