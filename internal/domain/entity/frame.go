package entity

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrFrameSize возвращается, если буфер не совпадает с размером кадра.
var ErrFrameSize = errors.New("frame buffer size mismatch")

// Frame кадр камеры в формате RGB565, строки идут подряд
type Frame struct {
	Rows int      // количество строк
	Cols int      // количество столбцов
	Pix  []uint16 // упакованные пиксели, len = Rows*Cols
}

// NewFrame создаёт чёрный кадр заданного размера
func NewFrame(rows, cols int) *Frame {
	return &Frame{
		Rows: rows,
		Cols: cols,
		Pix:  make([]uint16, rows*cols),
	}
}

// FrameFromBytes собирает кадр из дампа: два байта на пиксель, старший первым.
func FrameFromBytes(rows, cols int, data []byte) (*Frame, error) {
	if len(data) != rows*cols*2 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(data), rows*cols*2)
	}

	f := NewFrame(rows, cols)
	for i := range f.Pix {
		f.Pix[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return f, nil
}

// At возвращает пиксель по координатам
func (f *Frame) At(row, col int) uint16 {
	return f.Pix[row*f.Cols+col]
}

// Set записывает пиксель по координатам
func (f *Frame) Set(row, col int, px uint16) {
	f.Pix[row*f.Cols+col] = px
}

// Fill заливает прямоугольник [top,bottom)×[left,right) одним цветом, выход за кадр обрезается.
func (f *Frame) Fill(top, left, bottom, right int, px uint16) {
	top, bottom = max(top, 0), min(bottom, f.Rows)
	left, right = max(left, 0), min(right, f.Cols)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			f.Pix[y*f.Cols+x] = px
		}
	}
}

// Bytes сериализует кадр обратно в дамп (старший байт первым).
func (f *Frame) Bytes() []byte {
	out := make([]byte, 2*len(f.Pix))
	for i, px := range f.Pix {
		out[2*i] = byte(px >> 8)
		out[2*i+1] = byte(px)
	}
	return out
}

// RGBA раскодирует кадр для просмотра человеком.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Cols, f.Rows))
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			r, g, b := DecodeRGB565(f.At(y, x))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// DecodeRGB565 раскладывает пиксель на каналы 0..255.
// Масштабирование целочисленное с отбрасыванием дробной части, как на плате.
func DecodeRGB565(px uint16) (r, g, b uint8) {
	red := (px >> 11) & 0x1F
	green := (px >> 5) & 0x3F
	blue := px & 0x1F

	return uint8(red * 255 / 31), uint8(green * 255 / 63), uint8(blue * 255 / 31)
}

// EncodeRGB565 упаковывает 8-битные каналы обратно в RGB565.
func EncodeRGB565(r, g, b uint8) uint16 {
	red := uint16(r) * 31 / 255
	green := uint16(g) * 63 / 255
	blue := uint16(b) * 31 / 255

	return red<<11 | green<<5 | blue
}
