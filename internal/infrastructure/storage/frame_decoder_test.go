package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"line-vision/internal/domain/entity"
)

func TestFrameDecoder_Binary(t *testing.T) {
	d := NewFrameDecoder(2, 2)

	frame, err := d.Load(context.Background(), bytes.NewReader([]byte{
		0xF8, 0x00, 0xFF, 0xFF,
		0x07, 0xE0, 0x00, 0x1F,
	}), entity.FormatBinary)
	require.NoError(t, err)
	require.Equal(t, []uint16{0xF800, 0xFFFF, 0x07E0, 0x001F}, frame.Pix)
}

func TestFrameDecoder_BinaryShort(t *testing.T) {
	d := NewFrameDecoder(2, 2)

	_, err := d.Load(context.Background(), bytes.NewReader([]byte{0xF8, 0x00, 0xFF}), entity.FormatBinary)
	require.ErrorIs(t, err, ErrShortFrame)

	_, err = d.Load(context.Background(), bytes.NewReader(nil), entity.FormatBinary)
	require.ErrorIs(t, err, ErrShortFrame)
}

func TestFrameDecoder_Hex(t *testing.T) {
	d := NewFrameDecoder(2, 2)
	input := strings.Join([]string{
		"boot log",
		"0000 1111",
		"START IMAGE",
		"00F8 FFFF",
		"0xE007 1F00",
		"END IMAGE",
		"AAAA",
	}, "\n")

	frame, err := d.Load(context.Background(), strings.NewReader(input), entity.FormatHex)
	require.NoError(t, err)
	require.Equal(t, []uint16{0xF800, 0xFFFF, 0x07E0, 0x001F}, frame.Pix)
}

func TestFrameDecoder_HexErrors(t *testing.T) {
	d := NewFrameDecoder(2, 2)
	ctx := context.Background()

	_, err := d.Load(ctx, strings.NewReader("START IMAGE\n00F8 FFFF\nEND IMAGE\n"), entity.FormatHex)
	require.ErrorIs(t, err, ErrShortFrame)

	_, err = d.Load(ctx, strings.NewReader("START IMAGE\n00F8 zzzz\n"), entity.FormatHex)
	require.ErrorContains(t, err, "zzzz")
}

func TestFrameDecoder_Compact(t *testing.T) {
	d := NewFrameDecoder(2, 2)

	frame, err := d.Load(context.Background(), strings.NewReader("00F8FFFF\r\nE0071F00\n"), entity.FormatCompact)
	require.NoError(t, err)
	require.Equal(t, []uint16{0xF800, 0xFFFF, 0x07E0, 0x001F}, frame.Pix)
}

func TestFrameDecoder_Errors(t *testing.T) {
	d := NewFrameDecoder(2, 2)

	_, err := d.Load(context.Background(), strings.NewReader(""), entity.FrameFormat("jpeg"))
	require.ErrorContains(t, err, "unsupported")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Load(ctx, strings.NewReader("00F8FFFFE0071F00"), entity.FormatCompact)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFrameDecoder_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame_001.bin")
	require.NoError(t, os.WriteFile(path, []byte("00F8FFFFE0071F00"), 0o644))

	d := NewFrameDecoder(2, 2)
	frame, err := d.LoadFile(context.Background(), path, "")
	require.NoError(t, err)
	require.Equal(t, uint16(0xF800), frame.At(0, 0))

	_, err = d.LoadFile(context.Background(), filepath.Join(dir, "frame.jpg"), "")
	require.ErrorContains(t, err, "cannot guess")
}

func TestListFrames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.bin", "a.bin", "c.hex", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.bin"), 0o755))

	files, err := ListFrames(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.bin"),
		filepath.Join(dir, "b.bin"),
		filepath.Join(dir, "c.hex"),
	}, files)

	files, err = ListFrames(dir, ".HEX")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "c.hex")}, files)

	_, err = ListFrames(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
