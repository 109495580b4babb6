package chart

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/etnz/health"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 28

// Grid lays images out in rows of perRow cells under a caption line.
// Cells are sized after the largest image.
func Grid(caption string, images []image.Image, perRow int) *image.RGBA {
	cellW, cellH := 0, 0
	for _, img := range images {
		b := img.Bounds()
		cellW = max(cellW, b.Dx())
		cellH = max(cellH, b.Dy())
	}
	rows := health.Rows(images, perRow)
	if perRow <= 0 {
		perRow = 1
	}
	width := max(cellW*min(perRow, len(images)), 1)
	height := captionHeight + cellH*len(rows)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	drawText(dst, 8, 18, caption)

	for i, row := range rows {
		for j, img := range row {
			at := image.Pt(j*cellW, captionHeight+i*cellH)
			draw.Draw(dst, img.Bounds().Sub(img.Bounds().Min).Add(at), img, img.Bounds().Min, draw.Over)
		}
	}
	return dst
}

// placeholder returns a blank panel with a title and a message.
func placeholder(w, h int, title, msg string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	drawText(img, 16, 24, title)
	drawText(img, 16, h/2, msg)
	return img
}

func drawText(dst draw.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
