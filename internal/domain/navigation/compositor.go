package navigation

import (
	"errors"

	"line-vision/internal/domain/entity"
)

// ErrDimensionMismatch размеры слоя и изображения не совпадают
var ErrDimensionMismatch = errors.New("destination and layer size do not match")

// Colorize окрашивает включённые пиксели маски, остальные остаются фоном.
func Colorize(mask *entity.Mask, c entity.Color) *entity.ColorImage {
	img := entity.NewColorImage(mask.Rows, mask.Cols)
	for i, v := range mask.Pix {
		if v > 0 {
			img.Pix[i] = c
		}
	}
	return img
}

// Layer накладывает слой поверх dest: фоновые пиксели слоя прозрачны.
// При несовпадении размеров dest не меняется.
func Layer(dest, layer *entity.ColorImage) error {
	if !dest.SameSize(layer) {
		return ErrDimensionMismatch
	}
	for i, px := range layer.Pix {
		if px != entity.Background {
			dest.Pix[i] = px
		}
	}
	return nil
}

// Composite собирает отладочную картинку кадра: белая линия, отметки зелёным,
// стоп-линия красным поверх.
func Composite(report *entity.FrameReport) (*entity.ColorImage, error) {
	masks := []struct {
		mask  *entity.Mask
		color entity.Color
	}{
		{report.Guidance.Mask, entity.White},
		{report.Guidance.Overlay, entity.Green},
		{report.Stop.Mask, entity.Red},
	}

	var out *entity.ColorImage
	for _, m := range masks {
		if m.mask == nil {
			continue
		}
		if out == nil {
			out = entity.NewColorImage(m.mask.Rows, m.mask.Cols)
		}
		if err := Layer(out, Colorize(m.mask, m.color)); err != nil {
			return nil, err
		}
	}
	if out == nil {
		return nil, errors.New("report has no masks")
	}
	return out, nil
}
