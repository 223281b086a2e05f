package entity

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FrameFormat формат файла с кадром
type FrameFormat string

const (
	FormatBinary  FrameFormat = "binary"  // сырой дамп, 2 байта на пиксель
	FormatHex     FrameFormat = "hex"     // слова через пробел между START IMAGE и END IMAGE
	FormatCompact FrameFormat = "compact" // слова по 4 hex-символа без разделителей
)

// ParseFrameFormat разбирает название формата
func ParseFrameFormat(s string) (FrameFormat, error) {
	switch FrameFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatBinary, "bin", "raw":
		return FormatBinary, nil
	case FormatHex, "text":
		return FormatHex, nil
	case FormatCompact:
		return FormatCompact, nil
	default:
		return "", fmt.Errorf("unknown frame format %q", s)
	}
}

// FormatFromFilename угадывает формат по расширению.
// Снимки с платы сохраняются как .bin в компактном hex-виде.
func FormatFromFilename(name string) (FrameFormat, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".bin":
		return FormatCompact, true
	case ".raw", ".rgb565":
		return FormatBinary, true
	case ".hex", ".txt":
		return FormatHex, true
	default:
		return "", false
	}
}
