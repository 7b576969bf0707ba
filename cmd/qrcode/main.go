package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/qrcode_api.git/internal/app"
	"github.com/InQaaaaGit/qrcode_api.git/internal/buildinfo"
	"github.com/InQaaaaGit/qrcode_api.git/internal/config"
	"github.com/InQaaaaGit/qrcode_api.git/internal/server"
	"go.uber.org/zap"
)

// Заполняются при сборке через -ldflags "-X main.buildVersion=..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Ошибка запуска сервиса: %v", err)
	}
}

func run() error {
	// Инициализация конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	// Инициализация логгера
	logger, cleanup, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	info := buildinfo.New(buildVersion, buildDate, buildCommit)
	logger.Info("QR code service starting", info.Fields()...)

	// Остановка по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := app.NewApp(cfg, logger).Run(ctx); err != nil {
		logger.Error("Server failed", zap.Error(err))
		return err
	}
	return nil
}
