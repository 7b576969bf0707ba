package qrcode

import "errors"

// Сообщения об ошибках валидации. Текст является частью публичного API.
const (
	MsgEmptyContents          = "Contents cannot be null or blank"
	MsgSizeOutOfRange         = "Image size must be between 150 and 350 pixels"
	MsgInvalidCorrectionLevel = "Permitted error correction levels are L, M, Q, H"
	MsgUnsupportedImageFormat = "Only png, jpeg and gif image types are supported"
)

var (
	// ErrEmptyContents возвращается, когда содержимое пустое или состоит из пробелов
	ErrEmptyContents = errors.New("empty contents")

	// ErrSizeOutOfRange возвращается, когда размер изображения вне допустимого диапазона
	ErrSizeOutOfRange = errors.New("size out of range")

	// ErrInvalidCorrectionLevel возвращается для неизвестного уровня коррекции ошибок
	ErrInvalidCorrectionLevel = errors.New("invalid correction level")

	// ErrUnsupportedImageFormat возвращается для неподдерживаемого формата изображения
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
)

var (
	// ErrContentTooLong возвращается, когда содержимое не помещается в QR-код
	// с выбранным уровнем коррекции
	ErrContentTooLong = errors.New("content too long to encode")

	// ErrEncodingFailed возвращается при прочих ошибках кодирования
	ErrEncodingFailed = errors.New("qr encoding failed")

	// ErrNilMatrix возвращается растеризатором, если матрица не передана
	ErrNilMatrix = errors.New("nil bit matrix")
)

// ValidationError описывает ошибку валидации параметров запроса.
// Kind содержит одну из sentinel-ошибок выше, Message - текст для клиента.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap позволяет использовать errors.Is с sentinel-ошибками
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Message: msg}
}
