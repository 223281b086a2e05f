package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"line-vision/internal/container"
	"line-vision/internal/domain/entity"
)

// maxFrameFile больше этого файл кадра с платы быть не может
const maxFrameFile = 1 << 20

const (
	msgStart = `👋 Привет! Я разбираю кадры камеры робота, который едет по линии.

📎 Отправьте файл с кадром RGB565, и я скажу, видна ли стоп-линия и куда смещена направляющая.

📋 Команды:
/classify - начать разбор кадров
/format - формат файлов: binary, hex, compact или auto
/help - справка
/cancel - отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /classify
2️⃣ Пришлите кадр файлом (документом, не фото)
3️⃣ В ответ придут решение и картинка с масками

📄 Форматы:
• binary: сырой дамп, 2 байта на пиксель
• hex: вывод платы между START IMAGE и END IMAGE
• compact: снимок .bin, слова по 4 символа подряд
По умолчанию формат определяется по расширению файла.

📋 Команды:
/classify - начать разбор
/format <формат> - задать формат
/cancel - отменить операцию`

	msgAwaitingFrame   = "📎 Отправьте файл с кадром."
	msgCancelled       = "❌ Операция отменена. Отправьте /classify, чтобы разобрать кадр."
	msgSendClassify    = "📎 Сначала отправьте /classify, затем файл с кадром."
	msgSendDocument    = "📎 Пришлите кадр файлом, сжатые фото не подходят."
	msgBusy            = "⏳ Предыдущий кадр ещё обрабатывается."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgUnknownFormat   = "❓ Не удалось определить формат файла. Задайте его командой /format."
	msgTooLarge        = "⚠️ Файл слишком большой для одного кадра."
	msgProcessing      = "⏳ Обрабатываю кадр..."
	msgProcessingError = "⚠️ Не удалось обработать кадр: %v"
	msgFormatUsage     = "Использование: /format binary|hex|compact|auto"
	msgFormatSet       = "✅ Формат кадров: %s"
	msgFormatAuto      = "✅ Формат будет определяться по расширению файла."
)

// Bot представляет Telegram-бота
type Bot struct {
	api       *tgbotapi.BotAPI
	container *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", api.Self.UserName).Msg("authorized")

	return &Bot{
		api:       api,
		container: c,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.container.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Error().Err(err).Int64("user", msg.From.ID).Msg("get user")
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if msg.Document != nil {
		b.handleDocument(ctx, msg, user)
		return
	}

	if len(msg.Photo) > 0 {
		b.sendMessage(msg.Chat.ID, msgSendDocument)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendClassify)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	users := b.container.UserService

	switch msg.Command() {
	case "start":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "classify":
		if _, err := users.BeginClassify(ctx, user.ID, user.ChatID); err != nil {
			log.Error().Err(err).Int64("user", user.ID).Msg("begin classify")
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingFrame)

	case "format":
		format, ok := parseFormatArg(msg.CommandArguments())
		if !ok {
			b.sendMessage(msg.Chat.ID, msgFormatUsage)
			return
		}
		if _, err := users.SetFormat(ctx, user.ID, user.ChatID, format); err != nil {
			log.Error().Err(err).Int64("user", user.ID).Msg("set format")
			return
		}
		if format == "" {
			b.sendMessage(msg.Chat.ID, msgFormatAuto)
			return
		}
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgFormatSet, format))

	case "cancel":
		if _, err := users.Cancel(ctx, user.ID, user.ChatID); err != nil {
			log.Error().Err(err).Int64("user", user.ID).Msg("cancel")
		}
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleDocument разбирает присланный файл с кадром
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch user.State {
	case entity.StateAwaitingFrame:
	case entity.StateProcessing:
		b.sendMessage(msg.Chat.ID, msgBusy)
		return
	default:
		b.sendMessage(msg.Chat.ID, msgSendClassify)
		return
	}

	doc := msg.Document
	format, ok := user.FormatFor(doc.FileName)
	if !ok {
		b.sendMessage(msg.Chat.ID, msgUnknownFormat)
		return
	}
	if doc.FileSize > maxFrameFile {
		b.sendMessage(msg.Chat.ID, msgTooLarge)
		return
	}

	b.setState(ctx, user, entity.StateProcessing)
	// После ответа пользователь может сразу прислать следующий кадр
	defer b.setState(ctx, user, entity.StateAwaitingFrame)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	data, err := b.downloadFile(ctx, doc.FileID)
	if err != nil {
		log.Error().Err(err).Str("file", doc.FileName).Msg("download frame")
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgProcessingError, err))
		return
	}

	svc := b.container.ClassificationService
	frame, report, err := svc.ClassifyReader(ctx, doc.FileName, bytes.NewReader(data), format)
	if err != nil {
		log.Warn().Err(err).Str("file", doc.FileName).Str("format", string(format)).Msg("classify frame")
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgProcessingError, err))
		return
	}

	log.Info().
		Int64("user", user.ID).
		Str("file", doc.FileName).
		Bool("stop", report.Stop.Detected).
		Bool("found", report.Guidance.Found).
		Int8("distance", report.Guidance.Distance).
		Msg("frame classified")

	b.sendMessage(msg.Chat.ID, formatReport(report))

	preview, err := svc.Render(ctx, frame, report)
	if err != nil {
		log.Error().Err(err).Str("file", doc.FileName).Msg("render preview")
		return
	}
	b.sendPreview(msg.Chat.ID, previewName(doc.FileName, svc.PreviewExtension()), preview)
}

func (b *Bot) setState(ctx context.Context, user *entity.User, state entity.UserState) {
	if _, err := b.container.UserService.SetState(ctx, user.ID, user.ChatID, state); err != nil {
		log.Error().Err(err).Int64("user", user.ID).Str("state", string(state)).Msg("set state")
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFrameFile))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendPreview отправляет картинку: png как фото, остальное документом
func (b *Bot) sendPreview(chatID int64, name string, data []byte) {
	file := tgbotapi.FileBytes{Name: name, Bytes: data}

	var c tgbotapi.Chattable
	if strings.HasSuffix(name, ".png") {
		c = tgbotapi.NewPhoto(chatID, file)
	} else {
		c = tgbotapi.NewDocument(chatID, file)
	}

	if _, err := b.api.Send(c); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send preview")
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send message")
	}
}
