package models

// ErrorResponse тело ответа с ошибкой: {"error": "<message>"}
type ErrorResponse struct {
	Error string `json:"error"`
}
