// Package qrcode содержит доменную логику сервиса: валидацию параметров запроса,
// уровни коррекции ошибок, построение матрицы QR-кода и ее растеризацию.
//
// Сам алгоритм QR (упаковка данных, коды Рида-Соломона, размещение модулей)
// предоставляет библиотека github.com/skip2/go-qrcode.
package qrcode

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// Encoder строит матрицу QR-кода заданного размера
type Encoder interface {
	Encode(contents string, size int, level CorrectionLevel) (*BitMatrix, error)
}

// SymbolEncoder реализует Encoder поверх github.com/skip2/go-qrcode.
// Символ вместе с зоной тишины (4 модуля) масштабируется до size пикселей
// целым множителем и центрируется.
type SymbolEncoder struct{}

// NewSymbolEncoder создает кодировщик
func NewSymbolEncoder() *SymbolEncoder {
	return &SymbolEncoder{}
}

// Encode кодирует contents. Если символ с зоной тишины больше size,
// сторона результата равна числу модулей.
func (e *SymbolEncoder) Encode(contents string, size int, level CorrectionLevel) (*BitMatrix, error) {
	code, err := qr.New(contents, level.RecoveryLevel())
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, fmt.Errorf("%w: %d bytes at level %s", ErrContentTooLong, len(contents), level)
		}
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}

	return scale(code.Bitmap(), size)
}

// scale переносит символ на матрицу outputWidth x outputWidth
func scale(symbol [][]bool, size int) (*BitMatrix, error) {
	inputWidth := len(symbol)
	if inputWidth == 0 {
		return nil, fmt.Errorf("%w: empty symbol", ErrEncodingFailed)
	}

	outputWidth := max(size, inputWidth)
	multiple := outputWidth / inputWidth
	padding := (outputWidth - inputWidth*multiple) / 2

	matrix := NewBitMatrix(outputWidth)
	for y, row := range symbol {
		if len(row) != inputWidth {
			return nil, fmt.Errorf("%w: symbol is not square", ErrEncodingFailed)
		}
		top := padding + y*multiple
		for x, dark := range row {
			if dark {
				matrix.setRegion(padding+x*multiple, top, multiple)
			}
		}
	}
	return matrix, nil
}
