package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"line-vision/internal/domain/entity"
)

type Config struct {
	TelegramToken  string
	LogLevel       string // trace, debug, info, warn, error
	LogFormat      string // console или json
	ContourBackend string // trace или gocv
	OutputDir      string // куда сохранять картинки в пакетном режиме
	RenderScale    int
	RenderFormat   string // png или bmp
	BatchWorkers   int

	Params entity.Params
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	var errs []error
	intVar := func(key string, def int) int {
		v, err := envInt(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	d := entity.DefaultParams()
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:       envString("LOG_LEVEL", "info"),
		LogFormat:      envString("LOG_FORMAT", "console"),
		ContourBackend: envString("CONTOUR_BACKEND", "trace"),
		OutputDir:      envString("OUTPUT_DIR", "out"),
		RenderScale:    intVar("RENDER_SCALE", 4),
		RenderFormat:   envString("RENDER_FORMAT", "png"),
		BatchWorkers:   intVar("BATCH_WORKERS", 4),

		Params: entity.Params{
			Rows: intVar("FRAME_ROWS", d.Rows),
			Cols: intVar("FRAME_COLS", d.Cols),

			StopBox: entity.NewBox(
				intVar("STOPBOX_TL_X", d.StopBox.TopLeft.X),
				intVar("STOPBOX_TL_Y", d.StopBox.TopLeft.Y),
				intVar("STOPBOX_BR_X", d.StopBox.BottomRight.X),
				intVar("STOPBOX_BR_Y", d.StopBox.BottomRight.Y),
			),
			PercentToStop:      intVar("PERCENT_TO_STOP", d.PercentToStop),
			StopGreenTolerance: intVar("STOP_GREEN_TOLERANCE", d.StopGreenTolerance),
			StopBlueTolerance:  intVar("STOP_BLUE_TOLERANCE", d.StopBlueTolerance),

			VerticalCrop:     intVar("WHITE_VERTICAL_CROP", d.VerticalCrop),
			HorizontalCrop:   intVar("WHITE_HORIZONTAL_CROP", d.HorizontalCrop),
			TrackRedThresh:   intVar("WHITE_RED_THRESH", d.TrackRedThresh),
			TrackGreenThresh: intVar("WHITE_GREEN_THRESH", d.TrackGreenThresh),
			TrackBlueThresh:  intVar("WHITE_BLUE_THRESH", d.TrackBlueThresh),
			MinTrackArea:     intVar("WHITE_MIN_SIZE", d.MinTrackArea),
			CenterPos:        intVar("WHITE_CENTER_POS", d.CenterPos),
		},
	}

	if cfg.RenderScale < 1 {
		errs = append(errs, fmt.Errorf("RENDER_SCALE must be >= 1, got %d", cfg.RenderScale))
	}
	if cfg.BatchWorkers < 1 {
		errs = append(errs, fmt.Errorf("BATCH_WORKERS must be >= 1, got %d", cfg.BatchWorkers))
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return v, nil
}
