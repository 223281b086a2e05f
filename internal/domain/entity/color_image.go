package entity

import (
	"image"
	"image/color"
)

// Color цвет в RGB888
type Color struct {
	R, G, B uint8
}

// Background цвет фона, при наложении слоёв такие пиксели прозрачны
var Background = Color{}

var (
	White = Color{R: 255, G: 255, B: 255}
	Green = Color{G: 255}
	Red   = Color{R: 255}
)

// ColorImage цветное изображение для визуализации масок
type ColorImage struct {
	Rows int
	Cols int
	Pix  []Color
}

// NewColorImage создаёт изображение, залитое фоном
func NewColorImage(rows, cols int) *ColorImage {
	return &ColorImage{
		Rows: rows,
		Cols: cols,
		Pix:  make([]Color, rows*cols),
	}
}

// At возвращает цвет пикселя
func (c *ColorImage) At(row, col int) Color {
	return c.Pix[row*c.Cols+col]
}

// Set записывает цвет пикселя
func (c *ColorImage) Set(row, col int, clr Color) {
	c.Pix[row*c.Cols+col] = clr
}

// SameSize сравнивает размеры двух изображений
func (c *ColorImage) SameSize(o *ColorImage) bool {
	return c.Rows == o.Rows && c.Cols == o.Cols
}

// RGBA переводит изображение в стандартный image.RGBA.
func (c *ColorImage) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Cols, c.Rows))
	for y := 0; y < c.Rows; y++ {
		for x := 0; x < c.Cols; x++ {
			p := c.At(y, x)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
