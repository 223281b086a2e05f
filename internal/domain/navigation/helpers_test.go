package navigation

import (
	"errors"
	"image"
	"math"

	"line-vision/internal/domain/entity"
)

const (
	pxWhite uint16 = 0xFFFF
	pxRed   uint16 = 0xF800
	pxGray  uint16 = 0x8410
)

// synthFrame создаёт кадр по умолчанию, залитый одним цветом.
func synthFrame(px uint16) *entity.Frame {
	p := entity.DefaultParams()
	f := entity.NewFrame(p.Rows, p.Cols)
	f.Fill(0, 0, p.Rows, p.Cols, px)
	return f
}

// stubFinder возвращает заранее заданные контуры, не глядя на маску.
type stubFinder struct {
	contours []entity.Contour
	err      error
	calls    int
}

func (s *stubFinder) FindContours(mask *entity.Mask) ([]entity.Contour, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.contours, nil
}

func (s *stubFinder) ContourArea(c entity.Contour) float64 {
	return shoelace(c)
}

func shoelace(c entity.Contour) float64 {
	var sum int
	for i := range c {
		j := (i + 1) % len(c)
		sum += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return math.Abs(float64(sum)) / 2
}

func rect(x0, y0, x1, y1 int) entity.Contour {
	return entity.Contour{image.Pt(x0, y0), image.Pt(x0, y1), image.Pt(x1, y1), image.Pt(x1, y0)}
}

var errFinder = errors.New("finder failed")
