// Package handler содержит HTTP-обработчики сервиса генерации QR-кодов.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/InQaaaaGit/qrcode_api.git/internal/models"
	"github.com/InQaaaaGit/qrcode_api.git/internal/qrcode"
	"go.uber.org/zap"
)

const (
	contentTypeJSON = "application/json"

	msgContentTooLong  = "Contents are too long for the selected size and error correction level"
	msgProcessingError = "Error processing the image."
)

// Параметры запроса GET /api/qrcode
const (
	paramContents   = "contents"
	paramSize       = "size"
	paramType       = "type"
	paramCorrection = "correction"
)

// QRService определяет интерфейс генерации изображения QR-кода
type QRService interface {
	Generate(ctx context.Context, req qrcode.Request) (*qrcode.ImageResponse, error)
}

// Handler обрабатывает HTTP-запросы к API
type Handler struct {
	service QRService
	logger  *zap.Logger
}

// NewHandler создает обработчик с переданным сервисом и логгером
func NewHandler(service QRService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleQRCode обрабатывает GET /api/qrcode.
// Ошибки валидации возвращаются с кодом 400, ошибки обработки изображения - 500.
func (h *Handler) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := qrcode.NewRequest(
		query.Get(paramContents),
		parseSize(query.Get(paramSize)),
		valueOrDefault(query.Get(paramType), string(qrcode.DefaultImageFormat)),
		valueOrDefault(query.Get(paramCorrection), qrcode.DefaultCorrectionLevel.String()),
	)
	if err != nil {
		var vErr *qrcode.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Info("QR request rejected", zap.String("reason", vErr.Message))
			h.writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		h.logger.Error("Unexpected validation error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgProcessingError)
		return
	}

	image, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, qrcode.ErrContentTooLong) {
			h.logger.Info("QR contents exceed symbol capacity",
				zap.Int("length", len(req.Contents())),
				zap.Stringer("correction", req.CorrectionLevel()))
			h.writeError(w, http.StatusBadRequest, msgContentTooLong)
			return
		}
		h.logger.Error("Error generating QR code", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, msgProcessingError)
		return
	}

	w.Header().Set("Content-Type", image.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(image.Bytes)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image.Bytes); err != nil {
		h.logger.Error("Error writing image response", zap.Error(err))
	}
}

// writeError записывает JSON-ответ {"error": msg} с кодом status
func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Error writing JSON error response", zap.Error(err))
	}
}

// parseSize разбирает параметр size. Пустое значение заменяется размером
// по умолчанию, нечисловое - заведомо недопустимым, чтобы валидатор
// сообщил об ошибке размера в своем порядке проверок.
func parseSize(raw string) int {
	if raw == "" {
		return qrcode.DefaultSize
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return size
}

func valueOrDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
