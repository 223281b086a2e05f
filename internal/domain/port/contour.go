package port

import "line-vision/internal/domain/entity"

// ContourFinder интерфейс поиска контуров связных областей маски
type ContourFinder interface {
	// FindContours возвращает замкнутые границы всех связных областей
	FindContours(mask *entity.Mask) ([]entity.Contour, error)

	// ContourArea возвращает площадь многоугольника контура (без знака)
	ContourArea(c entity.Contour) float64
}
