// Package navigation содержит покадровую классификацию: стоп-линия и смещение
// направляющей линии. Арифметика повторяет прошивку платы, поэтому здесь нет
// глобального состояния и всё считается в целых числах, где это возможно.
package navigation

import "line-vision/internal/domain/entity"

// Decode раскладывает пиксель RGB565 на каналы 0..255
func Decode(px uint16) (r, g, b uint8) {
	return entity.DecodeRGB565(px)
}

// IsStopColor пиксель достаточно красный для стоп-линии
func IsStopColor(p entity.Params, r, g, b uint8) bool {
	return int(r) >= int(g)+p.StopGreenTolerance && int(r) >= int(b)+p.StopBlueTolerance
}

// IsTrackColor пиксель достаточно белый для направляющей линии
func IsTrackColor(p entity.Params, r, g, b uint8) bool {
	return int(r) >= p.TrackRedThresh && int(g) >= p.TrackGreenThresh && int(b) >= p.TrackBlueThresh
}
