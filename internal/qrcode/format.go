package qrcode

// ImageFormat формат результирующего изображения
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
	FormatGIF  ImageFormat = "gif"
)

// DefaultImageFormat используется, если формат не указан в запросе
const DefaultImageFormat = FormatPNG

// ParseImageFormat разбирает название формата. Регистр учитывается.
func ParseImageFormat(s string) (ImageFormat, error) {
	f := ImageFormat(s)
	if !f.Valid() {
		return "", newValidationError(ErrUnsupportedImageFormat, MsgUnsupportedImageFormat)
	}
	return f, nil
}

// Valid сообщает, поддерживается ли формат
func (f ImageFormat) Valid() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF:
		return true
	}
	return false
}

// MIMEType возвращает Content-Type вида image/<format>
func (f ImageFormat) MIMEType() string {
	return "image/" + string(f)
}
