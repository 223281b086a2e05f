package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"line-vision/config"
	telegram "line-vision/internal/api"
	app "line-vision/internal/application"
	"line-vision/internal/container"
	"line-vision/internal/domain/entity"
	"line-vision/internal/infrastructure/storage"
	"line-vision/internal/infrastructure/vision"
)

func main() {
	formatFlag := flag.String("format", "", "формат кадров: binary, hex, compact (по умолчанию по расширению)")
	noPreview := flag.Bool("no-preview", false, "не сохранять отладочные картинки")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	finder, err := vision.NewContourFinder(cfg.ContourBackend)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create contour finder")
	}
	renderer, err := vision.NewPNGRenderer(cfg.RenderScale, cfg.RenderFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create renderer")
	}
	decoder := storage.NewFrameDecoder(cfg.Params.Rows, cfg.Params.Cols)

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, cfg.Params, finder, decoder, renderer)

	if flag.NArg() > 0 {
		var format entity.FrameFormat
		if *formatFlag != "" {
			if format, err = entity.ParseFrameFormat(*formatFlag); err != nil {
				log.Fatal().Err(err).Msg("bad -format")
			}
		}
		opts := batchOptions{
			format:    format,
			outputDir: cfg.OutputDir,
			preview:   !*noPreview,
			workers:   cfg.BatchWorkers,
		}
		if err := runBatch(ctx, appContainer.ClassificationService, decoder, flag.Args(), opts); err != nil {
			log.Fatal().Err(err).Msg("batch failed")
		}
		return
	}

	if cfg.TelegramToken == "" {
		log.Fatal().Msg("TELEGRAM_TOKEN is required")
	}

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	log.Info().Str("backend", cfg.ContourBackend).Msg("bot is running")
	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot error")
	}
	log.Info().Msg("bot stopped")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

type batchOptions struct {
	format    entity.FrameFormat
	outputDir string
	preview   bool
	workers   int
}

// runBatch разбирает файлы и каталоги из командной строки
func runBatch(ctx context.Context, svc *app.ClassificationService, decoder *storage.FrameDecoder, args []string, opts batchOptions) error {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		files, err := storage.ListFrames(arg)
		if err != nil {
			return err
		}
		paths = append(paths, files...)
	}

	frames := make([]app.NamedFrame, 0, len(paths))
	for _, path := range paths {
		frame, err := decoder.LoadFile(ctx, path, opts.format)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skip frame")
			continue
		}
		frames = append(frames, app.NamedFrame{Name: path, Frame: frame})
	}

	start := time.Now()
	reports, err := svc.ClassifyBatch(ctx, frames, opts.workers)
	if err != nil {
		return err
	}

	if opts.preview {
		if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
			return err
		}
	}

	stops := 0
	for i, report := range reports {
		if report.Stop.Detected {
			stops++
		}
		log.Info().
			Str("frame", report.Name).
			Bool("stop", report.Stop.Detected).
			Int("votes", report.Stop.Votes).
			Bool("found", report.Guidance.Found).
			Str("reason", string(report.Guidance.Reason)).
			Int8("distance", report.Guidance.Distance).
			Int("raw_offset", report.Guidance.RawOffset).
			Msg("classified")

		if !opts.preview {
			continue
		}
		data, err := svc.Render(ctx, frames[i].Frame, report)
		if err != nil {
			return err
		}
		base := filepath.Base(report.Name)
		out := filepath.Join(opts.outputDir, base[:len(base)-len(filepath.Ext(base))]+svc.PreviewExtension())
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
	}

	log.Info().
		Int("frames", len(reports)).
		Int("stops", stops).
		Dur("elapsed", time.Since(start)).
		Msg("batch done")
	return nil
}
