package vision

import (
	"fmt"
	"strings"

	"line-vision/internal/domain/port"
)

const (
	BackendTrace = "trace" // собственная трассировка границ
	BackendGoCV  = "gocv"  // OpenCV, нужен тег сборки gocv
)

// NewContourFinder выбирает реализацию поиска контуров по названию.
func NewContourFinder(backend string) (port.ContourFinder, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendTrace:
		return NewBoundaryTracer(), nil
	case BackendGoCV:
		return NewGoCVContourFinder(), nil
	default:
		return nil, fmt.Errorf("unknown contour backend %q", backend)
	}
}
