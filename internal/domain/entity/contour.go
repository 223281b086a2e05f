package entity

import "image"

// Contour замкнутая граница одной связной области маски
type Contour []image.Point

// Extremes восемь крайних точек контура.
// Первое слово названия задаёт крайнюю строку/столбец, второе задаёт сторону на ней.
type Extremes struct {
	TopLeft     image.Point
	TopRight    image.Point
	BottomLeft  image.Point
	BottomRight image.Point
	LeftTop     image.Point
	LeftBottom  image.Point
	RightTop    image.Point
	RightBottom image.Point
}

// Points возвращает все восемь точек для отрисовки
func (e Extremes) Points() []image.Point {
	return []image.Point{
		e.TopLeft, e.TopRight, e.BottomLeft, e.BottomRight,
		e.LeftTop, e.LeftBottom, e.RightTop, e.RightBottom,
	}
}
