package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"line-vision/internal/domain/entity"
	"line-vision/internal/domain/port"
)

const (
	imageStart = "START IMAGE"
	imageEnd   = "END IMAGE"
)

// ErrShortFrame в файле меньше пикселей, чем в кадре
var ErrShortFrame = errors.New("not enough pixels for a frame")

// FrameDecoder читает кадры в форматах, которые отдаёт плата
type FrameDecoder struct {
	Rows int
	Cols int
}

// NewFrameDecoder создаёт загрузчик кадров заданного размера
func NewFrameDecoder(rows, cols int) *FrameDecoder {
	return &FrameDecoder{Rows: rows, Cols: cols}
}

// Load читает кадр в указанном формате.
// Hex-слова плата передаёт с переставленными байтами, поэтому они разворачиваются.
func (d *FrameDecoder) Load(ctx context.Context, r io.Reader, format entity.FrameFormat) (*entity.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case entity.FormatBinary:
		return d.loadBinary(r)
	case entity.FormatHex:
		words, err := readHexBlock(r)
		if err != nil {
			return nil, err
		}
		return d.fromWords(words)
	case entity.FormatCompact:
		words, err := readCompact(r)
		if err != nil {
			return nil, err
		}
		return d.fromWords(words)
	default:
		return nil, fmt.Errorf("unsupported frame format %q", format)
	}
}

// LoadFile открывает файл и определяет формат по расширению, если он не задан.
func (d *FrameDecoder) LoadFile(ctx context.Context, path string, format entity.FrameFormat) (*entity.Frame, error) {
	if format == "" {
		f, ok := entity.FormatFromFilename(path)
		if !ok {
			return nil, fmt.Errorf("cannot guess frame format of %s", path)
		}
		format = f
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame: %w", err)
	}
	defer file.Close()

	frame, err := d.Load(ctx, file, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return frame, nil
}

func (d *FrameDecoder) loadBinary(r io.Reader) (*entity.Frame, error) {
	buf := make([]byte, d.Rows*d.Cols*2)
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: read %d of %d bytes", ErrShortFrame, n, len(buf))
	}
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return entity.FrameFromBytes(d.Rows, d.Cols, buf)
}

func (d *FrameDecoder) fromWords(words []uint16) (*entity.Frame, error) {
	if len(words) < d.Rows*d.Cols {
		return nil, fmt.Errorf("%w: got %d of %d", ErrShortFrame, len(words), d.Rows*d.Cols)
	}
	f := entity.NewFrame(d.Rows, d.Cols)
	for i := range f.Pix {
		f.Pix[i] = bits.ReverseBytes16(words[i])
	}
	return f, nil
}

// readHexBlock читает слова между маркерами START IMAGE и END IMAGE.
func readHexBlock(r io.Reader) ([]uint16, error) {
	var words []uint16
	inBlock := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == imageStart:
			inBlock = true
			continue
		case line == imageEnd:
			return words, nil
		case !inBlock:
			continue
		}

		for _, field := range strings.Fields(line) {
			v, err := parseWord(field)
			if err != nil {
				return nil, err
			}
			words = append(words, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read hex frame: %w", err)
	}
	return words, nil
}

// readCompact читает слова по 4 символа подряд, переводы строк игнорируются.
func readCompact(r io.Reader) ([]uint16, error) {
	var words []uint16

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		for i := 0; i+4 <= len(line); i += 4 {
			v, err := parseWord(line[i : i+4])
			if err != nil {
				return nil, err
			}
			words = append(words, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read compact frame: %w", err)
	}
	return words, nil
}

func parseWord(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("parse pixel %q: %w", s, err)
	}
	return uint16(v), nil
}

// ListFrames возвращает отсортированные файлы каталога с нужными расширениями.
// Без расширений возвращаются все файлы, формат которых можно угадать.
func ListFrames(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frame dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if len(exts) == 0 {
			if _, ok := entity.FormatFromFilename(name); !ok {
				continue
			}
		} else if !slices.ContainsFunc(exts, func(ext string) bool { return strings.EqualFold(filepath.Ext(name), ext) }) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	slices.Sort(files)
	return files, nil
}

var _ port.FrameLoader = (*FrameDecoder)(nil)
