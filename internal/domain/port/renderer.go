package port

import "line-vision/internal/domain/entity"

// Renderer интерфейс отрисовки отладочной картинки
type Renderer interface {
	// Render возвращает закодированное изображение: исходный кадр и наложенные маски
	Render(frame *entity.Frame, report *entity.FrameReport) ([]byte, error)

	// Extension возвращает расширение файла для результата Render
	Extension() string
}
