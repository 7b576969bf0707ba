package qrcode

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
)

// JPEGQuality качество JPEG по умолчанию
const JPEGQuality = 75

var palette = color.Palette{color.White, color.Black}

// Rasterizer сериализует матрицу в изображение заданного формата
type Rasterizer interface {
	Rasterize(w io.Writer, m *BitMatrix, format ImageFormat) error
}

// ImageRasterizer рисует матрицу черно-белым изображением (один пиксель на
// модуль) и кодирует его стандартными кодеками image/*.
type ImageRasterizer struct {
	jpegQuality int
}

// NewImageRasterizer создает растеризатор
func NewImageRasterizer() *ImageRasterizer {
	return &ImageRasterizer{jpegQuality: JPEGQuality}
}

// Rasterize записывает изображение в w
func (r *ImageRasterizer) Rasterize(w io.Writer, m *BitMatrix, format ImageFormat) error {
	if m == nil {
		return ErrNilMatrix
	}

	img := toImage(m)

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: r.jpegQuality})
	case FormatGIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: len(palette)})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedImageFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

func toImage(m *BitMatrix) *image.Paletted {
	width := m.Width()
	img := image.NewPaletted(image.Rect(0, 0, width, width), palette)
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			if m.Get(x, y) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}
