package telegram

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"line-vision/internal/domain/entity"
)

func TestFormatReport(t *testing.T) {
	report := &entity.FrameReport{
		Name: "frame_012.bin",
		Stop: entity.StopResult{Detected: true, Votes: 121, Area: 286},
		Guidance: entity.GuidanceResult{
			Found:        true,
			Distance:     28,
			RawOffset:    32,
			Intersection: image.Pt(60, 50),
		},
	}

	text := formatReport(report)
	require.Contains(t, text, "frame_012.bin")
	require.Contains(t, text, "Стоп-линия: да (121 из 286")
	require.Contains(t, text, "Смещение линии: 28 (столбец 60 на строке 50)")
	require.Contains(t, text, "без ограничения 32")
}

func TestFormatReport_NotFound(t *testing.T) {
	report := &entity.FrameReport{
		Stop:     entity.StopResult{Votes: 3, Area: 286},
		Guidance: entity.GuidanceResult{Reason: entity.ReasonBelowMinArea},
	}

	text := formatReport(report)
	require.Contains(t, text, "Стоп-линия: нет")
	require.Contains(t, text, "Линия не найдена: below minimum area")
	require.NotContains(t, text, "Смещение")
}

func TestParseFormatArg(t *testing.T) {
	tests := []struct {
		arg    string
		format entity.FrameFormat
		ok     bool
	}{
		{"hex", entity.FormatHex, true},
		{" Compact ", entity.FormatCompact, true},
		{"raw", entity.FormatBinary, true},
		{"auto", "", true},
		{"", "", false},
		{"jpeg", "", false},
	}
	for _, tt := range tests {
		format, ok := parseFormatArg(tt.arg)
		require.Equal(t, tt.ok, ok, tt.arg)
		require.Equal(t, tt.format, format, tt.arg)
	}
}

func TestPreviewName(t *testing.T) {
	require.Equal(t, "frame_001.png", previewName("frame_001.bin", ".png"))
	require.Equal(t, "dump.bmp", previewName("captures/dump.hex", ".bmp"))
	require.Equal(t, "frame.png", previewName("", ".png"))
}
