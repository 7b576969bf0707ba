package qrcode

import "strings"

// Ограничения на размер изображения в пикселях
const (
	MinSize     = 150
	MaxSize     = 350
	DefaultSize = 250
)

// Request провалидированный запрос на генерацию QR-кода.
// Создается только через NewRequest и не изменяется после создания.
type Request struct {
	contents   string
	size       int
	format     ImageFormat
	correction CorrectionLevel
}

// NewRequest проверяет параметры запроса и возвращает Request.
//
// Проверки выполняются строго по порядку, возвращается первая ошибка:
//  1. contents не пустой после обрезки пробелов;
//  2. 150 <= size <= 350;
//  3. correction один из L, M, Q, H;
//  4. imageFormat один из png, jpeg, gif.
//
// Ошибка всегда имеет тип *ValidationError.
func NewRequest(contents string, size int, imageFormat, correction string) (Request, error) {
	if strings.TrimSpace(contents) == "" {
		return Request{}, newValidationError(ErrEmptyContents, MsgEmptyContents)
	}

	if size < MinSize || size > MaxSize {
		return Request{}, newValidationError(ErrSizeOutOfRange, MsgSizeOutOfRange)
	}

	level, err := ParseCorrectionLevel(correction)
	if err != nil {
		return Request{}, err
	}

	format, err := ParseImageFormat(imageFormat)
	if err != nil {
		return Request{}, err
	}

	return Request{
		contents:   contents,
		size:       size,
		format:     format,
		correction: level,
	}, nil
}

// Contents возвращает кодируемый текст без изменений
func (r Request) Contents() string { return r.contents }

// Size возвращает запрошенный размер стороны изображения в пикселях
func (r Request) Size() int { return r.size }

// Format возвращает формат изображения
func (r Request) Format() ImageFormat { return r.format }

// CorrectionLevel возвращает уровень коррекции ошибок
func (r Request) CorrectionLevel() CorrectionLevel { return r.correction }

// ImageResponse результат работы конвейера: байты изображения и их MIME-тип
type ImageResponse struct {
	Bytes    []byte
	MIMEType string
}
