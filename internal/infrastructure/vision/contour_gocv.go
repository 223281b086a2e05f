//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"line-vision/internal/domain/entity"
	"line-vision/internal/domain/port"
)

// GoCVContourFinder ищет контуры через OpenCV, как инструмент на десктопе.
type GoCVContourFinder struct{}

// NewGoCVContourFinder создаёт поиск контуров на OpenCV.
func NewGoCVContourFinder() *GoCVContourFinder {
	return &GoCVContourFinder{}
}

// FindContours вызывает findContours(RETR_TREE, CHAIN_APPROX_SIMPLE).
func (f *GoCVContourFinder) FindContours(mask *entity.Mask) ([]entity.Contour, error) {
	mat, err := gocv.NewMatFromBytes(mask.Rows, mask.Cols, gocv.MatTypeCV8U, mask.Pix)
	if err != nil {
		return nil, fmt.Errorf("mask to mat: %w", err)
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	out := make([]entity.Contour, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		out = append(out, entity.Contour(contours.At(i).ToPoints()))
	}
	return out, nil
}

// ContourArea вызывает contourArea без учёта ориентации.
func (f *GoCVContourFinder) ContourArea(c entity.Contour) float64 {
	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()
	return gocv.ContourArea(pv)
}

var _ port.ContourFinder = (*GoCVContourFinder)(nil)
