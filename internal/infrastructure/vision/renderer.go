package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"line-vision/internal/domain/entity"
	"line-vision/internal/domain/navigation"
	"line-vision/internal/domain/port"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// separator ширина полосы между исходным кадром и масками
const separator = 2

var labelColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// PNGRenderer рисует исходный кадр и наложенные маски рядом,
// увеличивает картинку без сглаживания и подписывает решение.
type PNGRenderer struct {
	Scale  int    // во сколько раз увеличивать кадр
	Format string // png или bmp
}

// NewPNGRenderer создаёт рендерер с заданным увеличением
func NewPNGRenderer(scale int, format string) (*PNGRenderer, error) {
	if scale < 1 {
		return nil, fmt.Errorf("render scale must be >= 1, got %d", scale)
	}
	switch format {
	case "", FormatPNG:
		format = FormatPNG
	case FormatBMP:
	default:
		return nil, fmt.Errorf("unknown render format %q", format)
	}
	return &PNGRenderer{Scale: scale, Format: format}, nil
}

// Extension возвращает расширение файла с точкой
func (r *PNGRenderer) Extension() string {
	return "." + r.Format
}

// Render собирает отладочную картинку кадра.
func (r *PNGRenderer) Render(frame *entity.Frame, report *entity.FrameReport) ([]byte, error) {
	img, err := r.Compose(frame, report)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch r.Format {
	case FormatBMP:
		err = bmp.Encode(&buf, img)
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", r.Format, err)
	}
	return buf.Bytes(), nil
}

// Compose возвращает картинку без кодирования.
func (r *PNGRenderer) Compose(frame *entity.Frame, report *entity.FrameReport) (*image.RGBA, error) {
	composite, err := navigation.Composite(report)
	if err != nil {
		return nil, err
	}

	w, h := frame.Cols, frame.Rows
	sheet := image.NewRGBA(image.Rect(0, 0, 2*w+separator, h))
	draw.Draw(sheet, image.Rect(0, 0, w, h), frame.RGBA(), image.Point{}, draw.Src)
	draw.Draw(sheet, image.Rect(w+separator, 0, 2*w+separator, h), composite.RGBA(), image.Point{}, draw.Src)

	g := gift.New(gift.Resize(sheet.Bounds().Dx()*r.Scale, sheet.Bounds().Dy()*r.Scale, gift.NearestNeighborResampling))
	out := image.NewRGBA(g.Bounds(sheet.Bounds()))
	g.Draw(out, sheet)

	drawLabel(out, (w+separator)*r.Scale+2, 13, Summary(report))
	return out, nil
}

// Summary короткая подпись решения по кадру
func Summary(report *entity.FrameReport) string {
	stop := "go"
	if report.Stop.Detected {
		stop = "STOP"
	}
	if d, ok := report.Guidance.Offset(); ok {
		return fmt.Sprintf("%s d=%d", stop, d)
	}
	return fmt.Sprintf("%s d=n/a", stop)
}

func drawLabel(img draw.Image, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

var _ port.Renderer = (*PNGRenderer)(nil)
