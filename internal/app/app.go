// Package app содержит основную структуру приложения и логику инициализации.
// Предоставляет точку входа для запуска HTTP сервера с настроенными маршрутами и middleware.
package app

import (
	"context"
	"net/http"
	"net/http/pprof"

	"github.com/InQaaaaGit/qrcode_api.git/internal/config"
	"github.com/InQaaaaGit/qrcode_api.git/internal/handler"
	"github.com/InQaaaaGit/qrcode_api.git/internal/middleware"
	"github.com/InQaaaaGit/qrcode_api.git/internal/server"
	"github.com/InQaaaaGit/qrcode_api.git/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Уровень gzip-сжатия JSON-ответов. Изображения уже сжаты и не перекодируются.
const compressLevel = 5

// App представляет приложение сервиса генерации QR-кодов.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер для записи событий приложения
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает приложение: сервисный слой, обработчики и маршруты.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	svc := service.NewDefaultQRService(logger)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, logger),
	}
	a.setupRoutes()

	return a
}

// Router возвращает корневой обработчик приложения
func (a *App) Router() http.Handler {
	return a.router
}

// Run запускает HTTP или HTTPS сервер и блокируется до отмены ctx.
// После отмены сервер корректно завершает текущие запросы.
func (a *App) Run(ctx context.Context) error {
	return server.NewHTTPServer(a.router, a.config, a.logger).Run(ctx)
}

// setupRoutes настраивает middleware и маршруты API
func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.Recoverer(a.logger))
	a.router.Use(chimiddleware.Compress(compressLevel, "application/json"))

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/health", a.handler.HandleHealth)
		r.Get("/qrcode", a.handler.HandleQRCode)
	})

	// Профилирование (только при включенном ENABLE_PPROF)
	if a.config.EnablePprof {
		a.router.Route("/debug/pprof", func(r chi.Router) {
			r.HandleFunc("/", pprof.Index)
			r.HandleFunc("/cmdline", pprof.Cmdline)
			r.HandleFunc("/profile", pprof.Profile)
			r.HandleFunc("/symbol", pprof.Symbol)
			r.HandleFunc("/trace", pprof.Trace)
			r.Handle("/{name}", http.HandlerFunc(pprof.Index))
		})
	}
}
