package navigation

import (
	"image"

	"line-vision/internal/domain/entity"
)

// saturation ограничивает результат деления до перевода в int,
// дальше кадра такие значения всё равно обрезаются.
const saturation = 1 << 20

// Line прямая через две точки контура.
// Считается во float32, как на плате; явные приведения типов не дают
// компилятору склеить умножение и сложение в FMA.
type Line struct {
	Top       image.Point
	Bottom    image.Point
	Vertical  bool
	Slope     float32
	Intercept float32
}

// FitLine строит прямую через две точки.
func FitLine(top, bottom image.Point) Line {
	l := Line{Top: top, Bottom: bottom}
	if bottom.X == top.X {
		l.Vertical = true
		return l
	}
	l.Slope = float32(bottom.Y-top.Y) / float32(bottom.X-top.X)
	l.Intercept = float32(top.Y) - float32(l.Slope*float32(top.X))
	return l
}

// ColumnAt возвращает столбец пересечения прямой со строкой row,
// дробная часть отбрасывается к нулю. Горизонтальная прямая строку не пересекает.
func (l Line) ColumnAt(row int) (int, bool) {
	if l.Vertical {
		return l.Top.X, true
	}
	if l.Slope == 0 {
		return 0, false
	}
	return truncate(float32(float32(row)-l.Intercept) / l.Slope), true
}

// RowAt возвращает строку прямой в столбце col.
func (l Line) RowAt(col int) (int, bool) {
	if l.Vertical {
		return 0, false
	}
	return truncate(float32(l.Slope*float32(col)) + l.Intercept), true
}

// Draw рисует прямую на маске, обрезая её по кадру.
// Прямая опрашивается и по строкам, и по столбцам, чтобы пологие участки не рвались.
func (l Line) Draw(m *entity.Mask) {
	for y := 0; y < m.Rows; y++ {
		if x, ok := l.ColumnAt(y); ok {
			m.Set(y, x)
		}
	}
	for x := 0; x < m.Cols; x++ {
		if y, ok := l.RowAt(x); ok {
			m.Set(y, x)
		}
	}
}

// ClampOffset ограничивает смещение диапазоном [-maxDist, maxDist].
func ClampOffset(d, maxDist int) int8 {
	return int8(max(-maxDist, min(d, maxDist)))
}

func truncate(v float32) int {
	switch {
	case v > saturation:
		return saturation
	case v < -saturation:
		return -saturation
	default:
		return int(v)
	}
}
