//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"line-vision/internal/domain/entity"
)

// GoCVContourFinder заглушка для сборки без OpenCV.
type GoCVContourFinder struct{}

// NewGoCVContourFinder создаёт заглушку (без OpenCV).
func NewGoCVContourFinder() *GoCVContourFinder {
	return &GoCVContourFinder{}
}

// FindContours возвращает ошибку, если сборка без тега gocv.
func (f *GoCVContourFinder) FindContours(mask *entity.Mask) ([]entity.Contour, error) {
	_ = mask
	return nil, errors.New("gocv build tag is not enabled")
}

// ContourArea возвращает 0, если сборка без тега gocv.
func (f *GoCVContourFinder) ContourArea(c entity.Contour) float64 {
	_ = c
	return 0
}
