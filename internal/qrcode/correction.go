package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// CorrectionLevel уровень коррекции ошибок QR-кода.
// От L (минимальная избыточность, максимальная емкость) до H.
type CorrectionLevel byte

const (
	CorrectionL CorrectionLevel = 'L'
	CorrectionM CorrectionLevel = 'M'
	CorrectionQ CorrectionLevel = 'Q'
	CorrectionH CorrectionLevel = 'H'
)

// DefaultCorrectionLevel используется, если уровень не указан в запросе
const DefaultCorrectionLevel = CorrectionL

// ParseCorrectionLevel разбирает однобуквенный код уровня коррекции.
// Регистр учитывается: допустимы только "L", "M", "Q", "H".
func ParseCorrectionLevel(s string) (CorrectionLevel, error) {
	if len(s) != 1 {
		return 0, newValidationError(ErrInvalidCorrectionLevel, MsgInvalidCorrectionLevel)
	}
	level := CorrectionLevel(s[0])
	if !level.Valid() {
		return 0, newValidationError(ErrInvalidCorrectionLevel, MsgInvalidCorrectionLevel)
	}
	return level, nil
}

// Valid сообщает, входит ли значение в перечисление
func (c CorrectionLevel) Valid() bool {
	switch c {
	case CorrectionL, CorrectionM, CorrectionQ, CorrectionH:
		return true
	}
	return false
}

func (c CorrectionLevel) String() string {
	return string(rune(c))
}

// RecoveryLevel возвращает уровень коррекции кодировщика.
// Вызов с недопустимым значением означает, что валидация была пропущена,
// поэтому метод паникует, а не подставляет значение по умолчанию.
func (c CorrectionLevel) RecoveryLevel() qr.RecoveryLevel {
	switch c {
	case CorrectionL:
		return qr.Low
	case CorrectionM:
		return qr.Medium
	case CorrectionQ:
		return qr.High
	case CorrectionH:
		return qr.Highest
	default:
		panic(fmt.Sprintf("unsupported error correction level: %q", rune(c)))
	}
}
