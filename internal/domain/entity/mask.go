package entity

import "image"

// MaskOn значение включённого пикселя маски
const MaskOn uint8 = 255

// Mask бинарная маска 0/255 того же размера, что и кадр
type Mask struct {
	Rows int
	Cols int
	Pix  []uint8
}

// NewMask создаёт пустую маску
func NewMask(rows, cols int) *Mask {
	return &Mask{
		Rows: rows,
		Cols: cols,
		Pix:  make([]uint8, rows*cols),
	}
}

// In проверяет, что точка лежит внутри маски
func (m *Mask) In(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// At возвращает значение пикселя, вне маски 0
func (m *Mask) At(row, col int) uint8 {
	if !m.In(row, col) {
		return 0
	}
	return m.Pix[row*m.Cols+col]
}

// Set включает пиксель; запись за пределами маски игнорируется.
func (m *Mask) Set(row, col int) {
	if m.In(row, col) {
		m.Pix[row*m.Cols+col] = MaskOn
	}
}

// Count возвращает количество включённых пикселей
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone возвращает независимую копию
func (m *Mask) Clone() *Mask {
	out := &Mask{Rows: m.Rows, Cols: m.Cols, Pix: make([]uint8, len(m.Pix))}
	copy(out.Pix, m.Pix)
	return out
}

// Equal сравнивает размеры и содержимое
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Rows != o.Rows || m.Cols != o.Cols {
		return false
	}
	for i := range m.Pix {
		if m.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// DrawLine рисует отрезок толщиной 1 пиксель (Брезенхэм).
func (m *Mask) DrawLine(a, b image.Point) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx + dy
	x, y := a.X, a.Y
	for {
		m.Set(y, x)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawCircle рисует окружность радиуса r без заливки.
func (m *Mask) DrawCircle(c image.Point, r int) {
	if r <= 0 {
		m.Set(c.Y, c.X)
		return
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		for _, p := range [...]image.Point{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			m.Set(c.Y+p.Y, c.X+p.X)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// DrawRect обводит область рамкой в 1 пиксель.
func (m *Mask) DrawRect(b Box) {
	tl, br := b.TopLeft, b.BottomRight
	m.DrawLine(tl, image.Pt(br.X, tl.Y))
	m.DrawLine(image.Pt(br.X, tl.Y), br)
	m.DrawLine(br, image.Pt(tl.X, br.Y))
	m.DrawLine(image.Pt(tl.X, br.Y), tl)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
