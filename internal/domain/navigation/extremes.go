package navigation

import "line-vision/internal/domain/entity"

// FindExtremes находит восемь крайних точек контура.
// Среди точек на крайней строке (столбце) берётся точка с меньшей или большей
// второй координатой по смыслу роли; при полном совпадении остаётся первая по порядку.
func FindExtremes(c entity.Contour) entity.Extremes {
	var e entity.Extremes
	if len(c) == 0 {
		return e
	}

	yMin, yMax := c[0].Y, c[0].Y
	xMin, xMax := c[0].X, c[0].X
	for _, pt := range c[1:] {
		yMin, yMax = min(yMin, pt.Y), max(yMax, pt.Y)
		xMin, xMax = min(xMin, pt.X), max(xMax, pt.X)
	}

	var top, bottom, left, right bool
	for _, pt := range c {
		if pt.Y == yMin {
			if !top || pt.X < e.TopLeft.X {
				e.TopLeft = pt
			}
			if !top || pt.X > e.TopRight.X {
				e.TopRight = pt
			}
			top = true
		}
		if pt.Y == yMax {
			if !bottom || pt.X < e.BottomLeft.X {
				e.BottomLeft = pt
			}
			if !bottom || pt.X > e.BottomRight.X {
				e.BottomRight = pt
			}
			bottom = true
		}
		if pt.X == xMin {
			if !left || pt.Y < e.LeftTop.Y {
				e.LeftTop = pt
			}
			if !left || pt.Y > e.LeftBottom.Y {
				e.LeftBottom = pt
			}
			left = true
		}
		if pt.X == xMax {
			if !right || pt.Y < e.RightTop.Y {
				e.RightTop = pt
			}
			if !right || pt.Y > e.RightBottom.Y {
				e.RightBottom = pt
			}
			right = true
		}
	}

	return e
}
