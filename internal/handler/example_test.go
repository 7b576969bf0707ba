package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/InQaaaaGit/qrcode_api.git/internal/handler"
	"github.com/InQaaaaGit/qrcode_api.git/internal/service"
	"go.uber.org/zap"
)

// ExampleHandler_HandleQRCode демонстрирует получение PNG-изображения QR-кода.
func ExampleHandler_HandleQRCode() {
	// Создаем логгер (отключаем логи для примера)
	logger := zap.NewNop()

	h := handler.NewHandler(service.NewDefaultQRService(logger), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/qrcode?contents=hello&size=250&type=png&correction=L", nil)
	rr := httptest.NewRecorder()

	h.HandleQRCode(rr, req)

	fmt.Printf("Status: %d\n", rr.Code)
	fmt.Printf("Content-Type: %s\n", rr.Header().Get("Content-Type"))
	fmt.Printf("PNG signature: %t\n", rr.Body.Len() > 8 && rr.Body.String()[1:4] == "PNG")

	// Output:
	// Status: 200
	// Content-Type: image/png
	// PNG signature: true
}

// ExampleHandler_HandleQRCode_validation демонстрирует ответ на некорректный размер.
func ExampleHandler_HandleQRCode_validation() {
	logger := zap.NewNop()
	h := handler.NewHandler(service.NewDefaultQRService(logger), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/qrcode?contents=hello&size=100", nil)
	rr := httptest.NewRecorder()

	h.HandleQRCode(rr, req)

	fmt.Printf("Status: %d\n", rr.Code)
	fmt.Print(rr.Body.String())

	// Output:
	// Status: 400
	// {"error":"Image size must be between 150 and 350 pixels"}
}

// ExampleHandler_HandleHealth демонстрирует проверку живости сервиса.
func ExampleHandler_HandleHealth() {
	h := handler.NewHandler(service.NewDefaultQRService(zap.NewNop()), zap.NewNop())

	rr := httptest.NewRecorder()
	h.HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	fmt.Printf("Status: %d, body length: %d\n", rr.Code, rr.Body.Len())

	// Output:
	// Status: 200, body length: 0
}
