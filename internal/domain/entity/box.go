package entity

import "image"

// Box прямоугольная область интереса, оба угла включительно
type Box struct {
	TopLeft     image.Point
	BottomRight image.Point
}

// NewBox создаёт область по координатам углов
func NewBox(tlX, tlY, brX, brY int) Box {
	return Box{
		TopLeft:     image.Pt(tlX, tlY),
		BottomRight: image.Pt(brX, brY),
	}
}

// Empty сообщает, что правый нижний угол лежит левее или выше левого верхнего.
func (b Box) Empty() bool {
	return b.BottomRight.X < b.TopLeft.X || b.BottomRight.Y < b.TopLeft.Y
}

// Area возвращает площадь в пикселях, для вырожденной области 0.
func (b Box) Area() int {
	if b.Empty() {
		return 0
	}
	return (b.BottomRight.X - b.TopLeft.X + 1) * (b.BottomRight.Y - b.TopLeft.Y + 1)
}

// Contains проверяет попадание точки, границы включаются.
func (b Box) Contains(p image.Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.BottomRight.X &&
		p.Y >= b.TopLeft.Y && p.Y <= b.BottomRight.Y
}
