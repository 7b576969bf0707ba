// Package config отвечает за конфигурацию сервиса.
//
// Источники конфигурации по возрастанию приоритета: значения по умолчанию,
// JSON-файл (-c или CONFIG), флаги командной строки, переменные окружения.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`   // Адрес для запуска HTTP-сервера
	EnableHTTPS     string        `env:"ENABLE_HTTPS"`     // Любое непустое значение включает HTTPS
	TLSCertFile     string        `env:"TLS_CERT_FILE"`    // Путь к сертификату TLS
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`     // Путь к ключу TLS
	LogLevel        string        `env:"LOG_LEVEL"`        // Уровень логирования zap
	EnablePprof     bool          `env:"ENABLE_PPROF"`     // Подключить /debug/pprof
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"` // Время на корректное завершение
	ConfigFile      string        `env:"CONFIG"`           // Путь к JSON-файлу конфигурации
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		ServerAddress:   ":8080",
		TLSCertFile:     "server.crt",
		TLSKeyFile:      "server.key",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// IsHTTPSEnabled сообщает, нужно ли запускать HTTPS сервер
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

// NewConfig инициализирует конфигурацию, читая флаги, JSON-файл и переменные окружения.
func NewConfig() (*Config, error) {
	cfg := Default()

	// 1. Определение флагов командной строки
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	flag.StringVar(&cfg.ConfigFile, "c", cfg.ConfigFile, "Путь к JSON-файлу конфигурации (env: CONFIG)")
	flag.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Путь к JSON-файлу конфигурации (env: CONFIG)")

	// 2. Парсинг флагов командной строки
	flag.Parse()

	// 3. JSON-файл применяется только к полям, не заданным флагами
	configFile := cfg.ConfigFile
	if v, ok := os.LookupEnv("CONFIG"); ok && v != "" {
		configFile = v
	}
	if configFile != "" {
		jsonCfg, err := loadJSONConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg.applyJSONConfig(jsonCfg, setFlags())
	}

	// 4. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setFlags возвращает имена флагов, явно указанных в командной строке
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
