// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview renders frame-submission geometry to images so
// foveated layouts can be inspected without a headset: full views as
// outlines, focus views as filled insets, placeholders as markers.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fovea"
)

const (
	margin      = 16
	strokeWidth = 2
	labelInsetX = 4
	labelInsetY = 14
)

var (
	backgroundColor  = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	fullViewColor    = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	focusViewColor   = color.RGBA{R: 240, G: 180, B: 60, A: 255}
	focusFillColor   = color.NRGBA{R: 240, G: 180, B: 60, A: 70}
	placeholderColor = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	labelColor       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
)

// RenderLayer draws every view's viewport of a multi-projection layer
// into one image. Device pixels shrink by scale (0 means 1:1); the
// drawing is offset so the smallest viewport origin lands at the margin.
// Placeholder viewports render as markers rather than rectangles, which
// makes an unpatched submission visually obvious.
func RenderLayer(layer *fovea.MultiProjLayer, scale float64) (*image.RGBA, error) {
	if layer == nil || len(layer.Views) == 0 {
		return nil, fmt.Errorf("preview: nothing to render")
	}
	if scale <= 0 {
		scale = 1
	}

	minX, minY := int32(math.MaxInt32), int32(math.MaxInt32)
	maxX, maxY := int32(math.MinInt32), int32(math.MinInt32)
	for _, view := range layer.Views {
		vp := view.Viewport
		minX = min(minX, vp.X)
		minY = min(minY, vp.Y)
		maxX = max(maxX, vp.X+vp.Width)
		maxY = max(maxY, vp.Y+vp.Height)
	}

	width := int(math.Ceil(float64(maxX-minX)*scale)) + 2*margin
	height := int(math.Ceil(float64(maxY-minY)*scale)) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), backgroundColor)

	for k, view := range layer.Views {
		r := scaledRect(view.Viewport, minX, minY, scale)
		switch {
		case view.Viewport.IsPlaceholder():
			marker := image.Rect(r.Min.X-4, r.Min.Y-4, r.Min.X+4, r.Min.Y+4)
			strokeRect(img, marker, placeholderColor)
			drawLabel(img, marker.Max.X+labelInsetX, marker.Max.Y, placeholderColor,
				fmt.Sprintf("view %d (placeholder)", k))
		case k < 2:
			strokeRect(img, r, fullViewColor)
			drawLabel(img, r.Min.X+labelInsetX, r.Min.Y+labelInsetY, labelColor,
				fmt.Sprintf("full %d", k))
		default:
			draw.Draw(img, r, image.NewUniform(focusFillColor), image.Point{}, draw.Over)
			strokeRect(img, r, focusViewColor)
			drawLabel(img, r.Min.X+labelInsetX, r.Min.Y+labelInsetY, labelColor,
				fmt.Sprintf("focus %d", k))
		}
	}
	return img, nil
}

// WritePNG encodes an image to a PNG file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("preview: encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("preview: close %q: %w", path, err)
	}
	return nil
}

func scaledRect(vp fovea.SwapchainViewport, minX, minY int32, scale float64) image.Rectangle {
	x0 := margin + int(math.Round(float64(vp.X-minX)*scale))
	y0 := margin + int(math.Round(float64(vp.Y-minY)*scale))
	x1 := margin + int(math.Round(float64(vp.X-minX+vp.Width)*scale))
	y1 := margin + int(math.Round(float64(vp.Y-minY+vp.Height)*scale))
	return image.Rect(x0, y0, x1, y1)
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, r image.Rectangle, col color.Color) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+strokeWidth), col)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-strokeWidth, r.Max.X, r.Max.Y), col)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+strokeWidth, r.Max.Y), col)
	fillRect(img, image.Rect(r.Max.X-strokeWidth, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func drawLabel(dst draw.Image, x, y int, col color.Color, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
