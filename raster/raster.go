// Package raster 提供海报装配所需的位图处理：解码、等比缩放、
// 圆形裁剪与 logo 压扁。所有函数无共享状态，可并发调用。
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// Open 解码本地图片文件，自动按 EXIF 方向校正。
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("解码图片 %s 失败: %w", path, err)
	}
	return img, nil
}

// ResizeToWidth 将图片等比缩放到目标宽度。
func ResizeToWidth(img image.Image, width int) *image.NRGBA {
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// CircleCrop 将任意图片裁剪为 size×size 的圆形：先缩放到正方形，
// 再用圆形 alpha 蒙版合成，圆外完全透明。头像与任何圆形徽标通用。
func CircleCrop(src image.Image, size int) *image.RGBA {
	resized := imaging.Resize(src, size, size, imaging.Lanczos)
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(out, out.Bounds(), resized, image.Point{}, circleMask(size), image.Point{}, draw.Over)
	return out
}

// circleMask 生成半径 size/2、圆心居中的 alpha 蒙版，边缘 1px 抗锯齿。
func circleMask(size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Sqrt(dx*dx + dy*dy)
			var a uint8
			switch {
			case d <= c-0.5:
				a = 255
			case d >= c+0.5:
				a = 0
			default:
				a = uint8(255 * (c + 0.5 - d))
			}
			mask.SetAlpha(x, y, color.Alpha{A: a})
		}
	}
	return mask
}

// FlattenSquare 将 logo 等比缩入 size×size 的正方形并平铺到背景色上，
// 源图的透明区域由背景色填实，避免透出页脚底色以外的内容。
func FlattenSquare(src image.Image, size int, bg color.Color) *image.NRGBA {
	canvas := imaging.New(size, size, bg)
	fitted := imaging.Fit(src, size, size, imaging.Lanczos)
	offset := image.Pt((size-fitted.Bounds().Dx())/2, (size-fitted.Bounds().Dy())/2)
	return imaging.Overlay(canvas, fitted, offset, 1.0)
}
