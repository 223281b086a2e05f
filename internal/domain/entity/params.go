package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams возвращается при некорректной конфигурации детекторов.
var ErrInvalidParams = errors.New("invalid detector params")

// Params неизменяемые настройки конвейера.
// Значения по умолчанию совпадают с прошивкой платы.
type Params struct {
	Rows int // строк в кадре
	Cols int // столбцов в кадре

	StopBox            Box // область поиска стоп-линии
	PercentToStop      int // доля красных пикселей области, %
	StopGreenTolerance int // на сколько красный канал должен превышать зелёный
	StopBlueTolerance  int // на сколько красный канал должен превышать синий

	VerticalCrop     int // строки выше отбрасываются, на этой же строке ищется пересечение
	HorizontalCrop   int // столбцы правее отбрасываются
	TrackRedThresh   int
	TrackGreenThresh int
	TrackBlueThresh  int
	MinTrackArea     int // минимальная площадь контура линии
	CenterPos        int // столбец, на котором робот держит линию
}

// DefaultParams возвращает настройки прошивки для кадра 96×96
func DefaultParams() Params {
	return Params{
		Rows: 96,
		Cols: 96,

		StopBox:            NewBox(15, 75, 40, 85),
		PercentToStop:      20,
		StopGreenTolerance: 15,
		StopBlueTolerance:  20,

		VerticalCrop:     50,
		HorizontalCrop:   75,
		TrackRedThresh:   240,
		TrackGreenThresh: 240,
		TrackBlueThresh:  240,
		MinTrackArea:     50,
		CenterPos:        28,
	}
}

// MaxDist предел модуля смещения, чтобы целевая точка не уходила за кадр
func (p Params) MaxDist() int {
	return min(p.CenterPos, p.Cols-p.CenterPos)
}

// Validate проверяет согласованность настроек
func (p Params) Validate() error {
	var errs []error
	if p.Rows <= 0 || p.Cols <= 0 {
		errs = append(errs, fmt.Errorf("frame size %dx%d must be positive", p.Rows, p.Cols))
	}
	if !p.StopBox.Empty() && !p.inFrame(p.StopBox) {
		errs = append(errs, fmt.Errorf("stop box %v-%v is outside the frame", p.StopBox.TopLeft, p.StopBox.BottomRight))
	}
	if p.PercentToStop < 0 || p.PercentToStop > 100 {
		errs = append(errs, fmt.Errorf("percent to stop %d is out of [0, 100]", p.PercentToStop))
	}
	if p.VerticalCrop < 0 || p.VerticalCrop >= p.Rows {
		errs = append(errs, fmt.Errorf("vertical crop %d is out of [0, %d)", p.VerticalCrop, p.Rows))
	}
	if p.HorizontalCrop < 0 || p.HorizontalCrop > p.Cols {
		errs = append(errs, fmt.Errorf("horizontal crop %d is out of [0, %d]", p.HorizontalCrop, p.Cols))
	}
	if p.CenterPos < 0 || p.CenterPos > p.Cols {
		errs = append(errs, fmt.Errorf("center position %d is out of [0, %d]", p.CenterPos, p.Cols))
	}
	if p.MaxDist() > math.MaxInt8 {
		errs = append(errs, fmt.Errorf("max distance %d does not fit int8", p.MaxDist()))
	}
	if p.MinTrackArea < 0 {
		errs = append(errs, fmt.Errorf("minimum track area %d is negative", p.MinTrackArea))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
}

func (p Params) inFrame(b Box) bool {
	return b.TopLeft.X >= 0 && b.TopLeft.Y >= 0 && b.BottomRight.X < p.Cols && b.BottomRight.Y < p.Rows
}
