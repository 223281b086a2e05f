package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"line-vision/internal/domain/entity"
	"line-vision/internal/domain/navigation"
	"line-vision/internal/domain/port"
)

// ErrNotConfigured возвращается, если сервису не передана нужная зависимость.
var ErrNotConfigured = errors.New("service dependency is not configured")

// ClassificationService прогоняет кадры через оба детектора.
type ClassificationService struct {
	params   entity.Params
	finder   port.ContourFinder
	loader   port.FrameLoader
	renderer port.Renderer
}

// NamedFrame кадр с именем файла, из которого он прочитан
type NamedFrame struct {
	Name  string
	Frame *entity.Frame
}

// NewClassificationService создаёт сервис классификации кадров.
// Параметры должны быть проверены заранее.
func NewClassificationService(params entity.Params, finder port.ContourFinder, loader port.FrameLoader, renderer port.Renderer) *ClassificationService {
	return &ClassificationService{
		params:   params,
		finder:   finder,
		loader:   loader,
		renderer: renderer,
	}
}

// Params возвращает настройки детекторов
func (s *ClassificationService) Params() entity.Params {
	return s.params
}

// Classify ищет стоп-линию и направляющую на одном кадре.
func (s *ClassificationService) Classify(ctx context.Context, frame *entity.Frame) (*entity.FrameReport, error) {
	if s.finder == nil {
		return nil, fmt.Errorf("contour finder: %w", ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if frame.Rows != s.params.Rows || frame.Cols != s.params.Cols {
		return nil, fmt.Errorf("%w: frame %dx%d, want %dx%d",
			entity.ErrFrameSize, frame.Rows, frame.Cols, s.params.Rows, s.params.Cols)
	}

	stop := navigation.DetectStop(frame, s.params)
	guidance, err := navigation.DetectGuidance(frame, s.params, s.finder)
	if err != nil {
		return nil, err
	}

	return &entity.FrameReport{Stop: stop, Guidance: guidance}, nil
}

// ClassifyReader читает кадр и классифицирует его.
func (s *ClassificationService) ClassifyReader(ctx context.Context, name string, r io.Reader, format entity.FrameFormat) (*entity.Frame, *entity.FrameReport, error) {
	if s.loader == nil {
		return nil, nil, fmt.Errorf("frame loader: %w", ErrNotConfigured)
	}

	frame, err := s.loader.Load(ctx, r, format)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}

	report, err := s.Classify(ctx, frame)
	if err != nil {
		return nil, nil, fmt.Errorf("classify %s: %w", name, err)
	}
	report.Name = name

	log.Debug().
		Str("frame", name).
		Bool("stop", report.Stop.Detected).
		Bool("found", report.Guidance.Found).
		Int8("distance", report.Guidance.Distance).
		Msg("frame classified")

	return frame, report, nil
}

// ClassifyBatch классифицирует кадры параллельно на workers горутинах.
// Отчёты возвращаются в порядке входа; первая ошибка отменяет остальную работу.
func (s *ClassificationService) ClassifyBatch(ctx context.Context, frames []NamedFrame, workers int) ([]*entity.FrameReport, error) {
	workers = max(1, min(workers, len(frames)))
	reports := make([]*entity.FrameReport, len(frames))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report, err := s.Classify(ctx, frames[i].Frame)
				if err != nil {
					once.Do(func() {
						firstErr = fmt.Errorf("classify %s: %w", frames[i].Name, err)
						cancel()
					})
					continue
				}
				report.Name = frames[i].Name
				reports[i] = report
			}
		}()
	}

feed:
	for i := range frames {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Render рисует отладочную картинку для отчёта.
func (s *ClassificationService) Render(ctx context.Context, frame *entity.Frame, report *entity.FrameReport) ([]byte, error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("renderer: %w", ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(frame, report)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", report.Name, err)
	}
	return data, nil
}

// PreviewExtension возвращает расширение файлов от Render
func (s *ClassificationService) PreviewExtension() string {
	if s.renderer == nil {
		return ""
	}
	return s.renderer.Extension()
}
