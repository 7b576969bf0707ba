package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/InQaaaaGit/qrcode_api.git/internal/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockEncoder реализует qrcode.Encoder для тестов
type mockEncoder struct {
	encodeFunc func(contents string, size int, level qrcode.CorrectionLevel) (*qrcode.BitMatrix, error)
	calls      int
}

func (m *mockEncoder) Encode(contents string, size int, level qrcode.CorrectionLevel) (*qrcode.BitMatrix, error) {
	m.calls++
	if m.encodeFunc != nil {
		return m.encodeFunc(contents, size, level)
	}
	return nil, errors.New("not implemented")
}

// mockRasterizer реализует qrcode.Rasterizer для тестов
type mockRasterizer struct {
	rasterizeFunc func(w io.Writer, m *qrcode.BitMatrix, format qrcode.ImageFormat) error
	calls         int
}

func (m *mockRasterizer) Rasterize(w io.Writer, matrix *qrcode.BitMatrix, format qrcode.ImageFormat) error {
	m.calls++
	if m.rasterizeFunc != nil {
		return m.rasterizeFunc(w, matrix, format)
	}
	return errors.New("not implemented")
}

func mustRequest(t *testing.T, contents string, size int, format, correction string) qrcode.Request {
	t.Helper()
	req, err := qrcode.NewRequest(contents, size, format, correction)
	require.NoError(t, err)
	return req
}

func TestGenerate(t *testing.T) {
	svc := NewDefaultQRService(zap.NewNop())

	tests := []struct {
		format    string
		mimeType  string
		signature []byte
	}{
		{format: "png", mimeType: "image/png", signature: []byte("\x89PNG")},
		{format: "jpeg", mimeType: "image/jpeg", signature: []byte{0xFF, 0xD8}},
		{format: "gif", mimeType: "image/gif", signature: []byte("GIF")},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp, err := svc.Generate(context.Background(), mustRequest(t, "hello", 250, tt.format, "L"))
			require.NoError(t, err)
			assert.Equal(t, tt.mimeType, resp.MIMEType)
			assert.True(t, bytes.HasPrefix(resp.Bytes, tt.signature))
		})
	}
}

func TestGeneratePassesRequestToCollaborators(t *testing.T) {
	enc := &mockEncoder{
		encodeFunc: func(contents string, size int, level qrcode.CorrectionLevel) (*qrcode.BitMatrix, error) {
			assert.Equal(t, "data", contents)
			assert.Equal(t, 200, size)
			assert.Equal(t, qrcode.CorrectionQ, level)
			return qrcode.NewBitMatrix(size), nil
		},
	}
	ras := &mockRasterizer{
		rasterizeFunc: func(w io.Writer, m *qrcode.BitMatrix, format qrcode.ImageFormat) error {
			assert.Equal(t, 200, m.Width())
			assert.Equal(t, qrcode.FormatGIF, format)
			_, err := w.Write([]byte("image"))
			return err
		},
	}

	svc := NewQRService(enc, ras, zap.NewNop())
	resp, err := svc.Generate(context.Background(), mustRequest(t, "data", 200, "gif", "Q"))
	require.NoError(t, err)
	assert.Equal(t, []byte("image"), resp.Bytes)
	assert.Equal(t, "image/gif", resp.MIMEType)
}

func TestGenerateEncoderFailure(t *testing.T) {
	enc := &mockEncoder{
		encodeFunc: func(string, int, qrcode.CorrectionLevel) (*qrcode.BitMatrix, error) {
			return nil, qrcode.ErrContentTooLong
		},
	}
	ras := &mockRasterizer{}

	svc := NewQRService(enc, ras, zap.NewNop())
	resp, err := svc.Generate(context.Background(), mustRequest(t, "data", 250, "png", "L"))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, qrcode.ErrContentTooLong)
	assert.Equal(t, 0, ras.calls, "rasterizer must not run after encoder failure")
}

func TestGenerateNilMatrixIsAnError(t *testing.T) {
	enc := &mockEncoder{
		encodeFunc: func(string, int, qrcode.CorrectionLevel) (*qrcode.BitMatrix, error) {
			return nil, nil
		},
	}
	ras := &mockRasterizer{}

	_, err := NewQRService(enc, ras, zap.NewNop()).
		Generate(context.Background(), mustRequest(t, "data", 250, "png", "L"))

	assert.ErrorIs(t, err, qrcode.ErrNilMatrix)
	assert.Equal(t, 0, ras.calls)
}

func TestGenerateRasterizerFailureReturnsNoBytes(t *testing.T) {
	ioErr := errors.New("disk full")
	enc := &mockEncoder{
		encodeFunc: func(_ string, size int, _ qrcode.CorrectionLevel) (*qrcode.BitMatrix, error) {
			return qrcode.NewBitMatrix(size), nil
		},
	}
	ras := &mockRasterizer{
		rasterizeFunc: func(w io.Writer, _ *qrcode.BitMatrix, _ qrcode.ImageFormat) error {
			_, _ = w.Write([]byte("partial"))
			return ioErr
		},
	}

	resp, err := NewQRService(enc, ras, zap.NewNop()).
		Generate(context.Background(), mustRequest(t, "data", 250, "png", "L"))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ioErr)
}

func TestGenerateCanceledContext(t *testing.T) {
	enc := &mockEncoder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewQRService(enc, &mockRasterizer{}, zap.NewNop()).
		Generate(ctx, mustRequest(t, "data", 250, "png", "L"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, enc.calls)
}
