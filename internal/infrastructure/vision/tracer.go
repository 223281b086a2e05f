package vision

import (
	"image"
	"math"

	"line-vision/internal/domain/entity"
	"line-vision/internal/domain/port"
)

// Соседи по часовой стрелке (ось Y направлена вниз), начиная с востока.
var neighbours = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

const dirWest = 4

// BoundaryTracer ищет внешние границы 8-связных областей без OpenCV.
// Результат совпадает с findContours(CHAIN_APPROX_SIMPLE) по вершинам и площадям
// внешних контуров; контуры дыр не возвращаются.
type BoundaryTracer struct{}

// NewBoundaryTracer создаёт трассировщик контуров
func NewBoundaryTracer() *BoundaryTracer {
	return &BoundaryTracer{}
}

// FindContours возвращает по одному контуру на связную область
// в порядке построчного обхода их первых пикселей.
func (t *BoundaryTracer) FindContours(mask *entity.Mask) ([]entity.Contour, error) {
	labels := make([]int32, len(mask.Pix))
	var contours []entity.Contour
	var label int32

	for y := 0; y < mask.Rows; y++ {
		for x := 0; x < mask.Cols; x++ {
			i := y*mask.Cols + x
			if mask.Pix[i] == 0 || labels[i] != 0 {
				continue
			}
			label++
			fill(mask, labels, image.Pt(x, y), label)
			contours = append(contours, compress(traceBorder(mask, image.Pt(x, y))))
		}
	}

	return contours, nil
}

// ContourArea площадь многоугольника по формуле Гаусса
func (t *BoundaryTracer) ContourArea(c entity.Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	var sum int
	for i := range c {
		j := (i + 1) % len(c)
		sum += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return math.Abs(float64(sum)) / 2
}

// fill помечает всю 8-связную область, начиная с start.
func fill(mask *entity.Mask, labels []int32, start image.Point, label int32) {
	stack := []image.Point{start}
	labels[start.Y*mask.Cols+start.X] = label
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbours {
			q := p.Add(d)
			if mask.At(q.Y, q.X) == 0 {
				continue
			}
			if i := q.Y*mask.Cols + q.X; labels[i] == 0 {
				labels[i] = label
				stack = append(stack, q)
			}
		}
	}
}

// traceBorder обходит внешнюю границу области с верхнего левого пикселя start
// (алгоритм Suzuki–Abe для внешней границы).
func traceBorder(mask *entity.Mask, start image.Point) entity.Contour {
	on := func(p image.Point) bool { return mask.At(p.Y, p.X) != 0 }

	// первый сосед по часовой стрелке, начиная с запада
	first := -1
	for k := 0; k < 8; k++ {
		if on(start.Add(neighbours[(dirWest+k)%8])) {
			first = (dirWest + k) % 8
			break
		}
	}
	if first < 0 {
		return entity.Contour{start}
	}

	p1 := start.Add(neighbours[first])
	points := entity.Contour{start}
	prev, cur := p1, start
	for {
		d := direction(cur, prev)
		var next image.Point
		for k := 1; k <= 8; k++ {
			q := cur.Add(neighbours[(d-k+8)%8])
			if on(q) {
				next = q
				break
			}
		}
		if next == start && cur == p1 {
			return points
		}
		prev, cur = cur, next
		points = append(points, cur)
	}
}

// direction индекс соседа to относительно from
func direction(from, to image.Point) int {
	d := to.Sub(from)
	for i, n := range neighbours {
		if n == d {
			return i
		}
	}
	return 0
}

// compress оставляет только точки, где меняется направление обхода.
func compress(c entity.Contour) entity.Contour {
	n := len(c)
	if n <= 2 {
		return c
	}
	out := make(entity.Contour, 0, n)
	for i, p := range c {
		in := p.Sub(c[(i-1+n)%n])
		outDir := c[(i+1)%n].Sub(p)
		if in != outDir {
			out = append(out, p)
		}
	}
	return out
}

var _ port.ContourFinder = (*BoundaryTracer)(nil)
