package port

import (
	"context"
	"io"

	"line-vision/internal/domain/entity"
)

// FrameLoader интерфейс загрузки кадра из файла одного из форматов платы
type FrameLoader interface {
	// Load читает кадр в заданном формате
	Load(ctx context.Context, r io.Reader, format entity.FrameFormat) (*entity.Frame, error)
}
