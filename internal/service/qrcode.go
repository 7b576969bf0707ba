// Package service содержит бизнес-логику генерации изображений QR-кодов.
package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/InQaaaaGit/qrcode_api.git/internal/qrcode"
	"go.uber.org/zap"
)

// QRService определяет интерфейс сервиса генерации QR-кодов
type QRService interface {
	Generate(ctx context.Context, req qrcode.Request) (*qrcode.ImageResponse, error)
}

// QRServiceImpl реализует QRService: кодирует текст в матрицу и
// растеризует ее в запрошенный формат.
type QRServiceImpl struct {
	encoder    qrcode.Encoder
	rasterizer qrcode.Rasterizer
	logger     *zap.Logger
}

// NewQRService создает сервис с переданными кодировщиком и растеризатором
func NewQRService(encoder qrcode.Encoder, rasterizer qrcode.Rasterizer, logger *zap.Logger) *QRServiceImpl {
	return &QRServiceImpl{
		encoder:    encoder,
		rasterizer: rasterizer,
		logger:     logger,
	}
}

// NewDefaultQRService создает сервис на go-qrcode и стандартных кодеках изображений
func NewDefaultQRService(logger *zap.Logger) *QRServiceImpl {
	return NewQRService(qrcode.NewSymbolEncoder(), qrcode.NewImageRasterizer(), logger)
}

// Generate строит изображение QR-кода. Результат либо полный, либо ошибка:
// частично записанные байты никогда не возвращаются.
func (s *QRServiceImpl) Generate(ctx context.Context, req qrcode.Request) (*qrcode.ImageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matrix, err := s.encoder.Encode(req.Contents(), req.Size(), req.CorrectionLevel())
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if matrix == nil {
		return nil, fmt.Errorf("encode: %w", qrcode.ErrNilMatrix)
	}

	s.logger.Debug("QR matrix encoded",
		zap.Int("size", req.Size()),
		zap.Int("width", matrix.Width()),
		zap.Stringer("correction", req.CorrectionLevel()))

	var buf bytes.Buffer
	if err := s.rasterizer.Rasterize(&buf, matrix, req.Format()); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	return &qrcode.ImageResponse{
		Bytes:    buf.Bytes(),
		MIMEType: req.Format().MIMEType(),
	}, nil
}
