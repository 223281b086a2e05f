package entity

import "image"

// StopResult итог поиска стоп-линии
type StopResult struct {
	Detected bool  // стоп-линия найдена
	Votes    int   // красных пикселей внутри области
	Area     int   // площадь области
	Mask     *Mask // красные пиксели и рамка области
}

// NotFoundReason причина, по которой линия не найдена
type NotFoundReason string

const (
	ReasonNone          NotFoundReason = ""
	ReasonNoContours    NotFoundReason = "no contours"        // в окне нет белых пикселей
	ReasonBelowMinArea  NotFoundReason = "below minimum area" // крупнейший контур слишком мал
	ReasonHorizontalFit NotFoundReason = "horizontal fit"     // прямая не пересекает опорную строку
)

// GuidanceResult итог поиска направляющей линии
type GuidanceResult struct {
	Found        bool
	Reason       NotFoundReason // заполнено, если Found == false
	Mask         *Mask          // белые пиксели внутри окна
	Overlay      *Mask          // отладочные отметки
	Distance     int8           // смещение после ограничения
	RawOffset    int            // смещение до ограничения
	Intersection image.Point    // пересечение прямой с опорной строкой
	Extremes     Extremes
	Area         float64 // площадь выбранного контура
}

// Offset возвращает смещение и признак того, что ему можно доверять.
func (g GuidanceResult) Offset() (int8, bool) {
	if !g.Found {
		return 0, false
	}
	return g.Distance, true
}

// FrameReport результат обработки одного кадра
type FrameReport struct {
	Name     string
	Stop     StopResult
	Guidance GuidanceResult
}
