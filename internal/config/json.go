package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// JSONConfig структура JSON-файла конфигурации.
// Указатели позволяют отличить отсутствующее поле от нулевого значения.
type JSONConfig struct {
	ServerAddress   *string `json:"server_address,omitempty"`
	EnableHTTPS     *bool   `json:"enable_https,omitempty"`
	TLSCertFile     *string `json:"tls_cert_file,omitempty"`
	TLSKeyFile      *string `json:"tls_key_file,omitempty"`
	LogLevel        *string `json:"log_level,omitempty"`
	EnablePprof     *bool   `json:"enable_pprof,omitempty"`
	ShutdownTimeout *string `json:"shutdown_timeout,omitempty"`
}

// loadJSONConfig читает JSON-файл. Отсутствующий файл не является ошибкой.
func loadJSONConfig(filename string) (*JSONConfig, error) {
	cfg := &JSONConfig{}
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", filename, err)
	}

	if cfg.ShutdownTimeout != nil {
		if _, err := time.ParseDuration(*cfg.ShutdownTimeout); err != nil {
			return nil, fmt.Errorf("parse shutdown_timeout: %w", err)
		}
	}

	return cfg, nil
}

// applyJSONConfig переносит значения из JSON в конфигурацию, пропуская
// поля, заданные флагами командной строки (skip - имена флагов).
func (c *Config) applyJSONConfig(j *JSONConfig, skip map[string]bool) {
	if j.ServerAddress != nil && !skip["a"] {
		c.ServerAddress = *j.ServerAddress
	}
	if j.EnableHTTPS != nil && !skip["s"] {
		if *j.EnableHTTPS {
			c.EnableHTTPS = "true"
		} else {
			c.EnableHTTPS = ""
		}
	}
	if j.TLSCertFile != nil {
		c.TLSCertFile = *j.TLSCertFile
	}
	if j.TLSKeyFile != nil {
		c.TLSKeyFile = *j.TLSKeyFile
	}
	if j.LogLevel != nil && !skip["l"] {
		c.LogLevel = *j.LogLevel
	}
	if j.EnablePprof != nil {
		c.EnablePprof = *j.EnablePprof
	}
	if j.ShutdownTimeout != nil {
		// Формат проверен в loadJSONConfig
		if d, err := time.ParseDuration(*j.ShutdownTimeout); err == nil {
			c.ShutdownTimeout = d
		}
	}
}
