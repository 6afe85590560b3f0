// Package logger собирает zap.SugaredLogger по настройкам сервера.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options — параметры логгера.
type Options struct {
	Level string // debug, info, warn, error
	File  string // путь к файлу лога; пусто — только stdout
	Dev   bool   // человекочитаемый development-формат
}

// New создаёт логгер: JSON в production, консольный формат в dev.
// При заданном File вывод дублируется в файл с ежедневной ротацией.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}

	var encCfg zapcore.EncoderConfig
	if opts.Dev {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if opts.Dev {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}

	if opts.File != "" {
		w, err := rotatingWriter(opts.File)
		if err != nil {
			return nil, err
		}
		// в файл всегда JSON
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level))
	}

	zopts := []zap.Option{zap.AddCaller()}
	if opts.Dev {
		zopts = append(zopts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), zopts...), nil
}

// rotatingWriter — файл вида app.log.20260102 со ссылкой app.log на текущий, хранение 7 дней.
func rotatingWriter(path string) (*rotatelogs.RotateLogs, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	w, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(7*24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("open rotating log %s: %w", path, err)
	}
	return w, nil
}
