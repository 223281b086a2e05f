package telegram

import (
	"fmt"
	"path/filepath"
	"strings"

	"line-vision/internal/domain/entity"
)

// formatReport текст ответа по одному кадру
func formatReport(report *entity.FrameReport) string {
	var sb strings.Builder

	if report.Name != "" {
		fmt.Fprintf(&sb, "🖼 %s\n", report.Name)
	}

	stop := report.Stop
	if stop.Detected {
		fmt.Fprintf(&sb, "🛑 Стоп-линия: да (%d из %d пикселей)\n", stop.Votes, stop.Area)
	} else {
		fmt.Fprintf(&sb, "🟢 Стоп-линия: нет (%d из %d пикселей)\n", stop.Votes, stop.Area)
	}

	g := report.Guidance
	if d, ok := g.Offset(); ok {
		fmt.Fprintf(&sb, "➡️ Смещение линии: %d (столбец %d на строке %d)", d, g.Intersection.X, g.Intersection.Y)
		if int(d) != g.RawOffset {
			fmt.Fprintf(&sb, ", без ограничения %d", g.RawOffset)
		}
	} else {
		fmt.Fprintf(&sb, "❔ Линия не найдена: %s", g.Reason)
	}

	return sb.String()
}

// parseFormatArg разбирает аргумент /format, auto сбрасывает формат
func parseFormatArg(arg string) (entity.FrameFormat, bool) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", false
	}
	if strings.EqualFold(arg, "auto") {
		return "", true
	}
	format, err := entity.ParseFrameFormat(arg)
	if err != nil {
		return "", false
	}
	return format, true
}

// previewName имя картинки по имени файла кадра
func previewName(fileName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	if base == "" || base == "." {
		base = "frame"
	}
	return base + ext
}
