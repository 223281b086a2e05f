package navigation

import (
	"image"

	"line-vision/internal/domain/entity"
)

// DetectStop ищет стоп-линию в заданной области кадра.
// Белые блики не голосуют, даже если проходят по красному порогу.
func DetectStop(frame *entity.Frame, p entity.Params) entity.StopResult {
	res := entity.StopResult{
		Area: p.StopBox.Area(),
		Mask: entity.NewMask(frame.Rows, frame.Cols),
	}
	if res.Area == 0 {
		return res
	}

	for y := 0; y < frame.Rows; y++ {
		for x := 0; x < frame.Cols; x++ {
			r, g, b := Decode(frame.At(y, x))
			if !IsStopColor(p, r, g, b) || IsTrackColor(p, r, g, b) {
				continue
			}
			if p.StopBox.Contains(image.Pt(x, y)) {
				res.Votes++
				res.Mask.Set(y, x)
			}
		}
	}

	// рамка только для отладки, голоса уже посчитаны
	res.Mask.DrawRect(p.StopBox)

	res.Detected = StopDecision(res.Votes, res.Area, p.PercentToStop)
	return res
}

// StopDecision сравнивает долю голосов с порогом в сотых долях процента.
func StopDecision(votes, area, percent int) bool {
	if area <= 0 {
		return false
	}
	return votes*10000/area >= percent*100
}
