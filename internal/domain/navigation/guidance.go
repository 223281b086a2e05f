package navigation

import (
	"fmt"
	"image"

	"line-vision/internal/domain/entity"
	"line-vision/internal/domain/port"
)

// DetectGuidance ищет белую направляющую линию и её смещение от целевого столбца.
// Ошибка возвращается только при сбое поиска контуров; ненайденная линия
// отражается в Found и Reason.
func DetectGuidance(frame *entity.Frame, p entity.Params, finder port.ContourFinder) (entity.GuidanceResult, error) {
	res := entity.GuidanceResult{
		Mask:    TrackMask(frame, p),
		Overlay: entity.NewMask(frame.Rows, frame.Cols),
	}

	contours, err := finder.FindContours(res.Mask)
	if err != nil {
		return res, fmt.Errorf("find contours: %w", err)
	}

	best, area := largestContour(finder, contours)
	if len(best) == 0 {
		res.Reason = entity.ReasonNoContours
		return res, nil
	}
	res.Area = area
	if area < float64(p.MinTrackArea) {
		res.Reason = entity.ReasonBelowMinArea
		return res, nil
	}

	res.Extremes = FindExtremes(best)

	// Используются только две точки, остальные шесть нужны для отладки
	line := FitLine(res.Extremes.LeftTop, res.Extremes.BottomLeft)
	col, ok := line.ColumnAt(p.VerticalCrop)
	if !ok {
		res.Reason = entity.ReasonHorizontalFit
		return res, nil
	}

	res.Found = true
	res.Intersection = image.Pt(col, p.VerticalCrop)
	res.RawOffset = col - p.CenterPos
	res.Distance = ClampOffset(res.RawOffset, p.MaxDist())

	drawOverlay(res.Overlay, p, res.Extremes, line, res.Intersection)
	return res, nil
}

// TrackMask отмечает белые пиксели внутри окна поиска линии.
func TrackMask(frame *entity.Frame, p entity.Params) *entity.Mask {
	mask := entity.NewMask(frame.Rows, frame.Cols)
	right := min(p.HorizontalCrop, frame.Cols)
	for y := max(p.VerticalCrop, 0); y < frame.Rows; y++ {
		for x := 0; x < right; x++ {
			if r, g, b := Decode(frame.At(y, x)); IsTrackColor(p, r, g, b) {
				mask.Set(y, x)
			}
		}
	}
	return mask
}

// largestContour выбирает контур с наибольшей площадью, при равенстве первый по порядку.
func largestContour(finder port.ContourFinder, contours []entity.Contour) (entity.Contour, float64) {
	var best entity.Contour
	bestArea := -1.0
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		if a := finder.ContourArea(c); a > bestArea {
			best, bestArea = c, a
		}
	}
	return best, max(bestArea, 0)
}

func drawOverlay(m *entity.Mask, p entity.Params, e entity.Extremes, line Line, cross image.Point) {
	for _, pt := range e.Points() {
		m.DrawCircle(pt, 1)
	}
	line.Draw(m)
	m.DrawCircle(cross, 2)
	m.DrawLine(image.Pt(p.CenterPos, 0), image.Pt(p.CenterPos, m.Rows-1))
	m.DrawLine(image.Pt(0, p.VerticalCrop), image.Pt(m.Cols-1, p.VerticalCrop))
}
