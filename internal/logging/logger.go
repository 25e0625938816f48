// Package logging provides the process-wide structured logger.
//
// The TUI owns the terminal, so logs always go to a rotating file.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "dnet"

var (
	logger *Logger

	// Noop logger as safe fallback when not initialized.
	noopLogger = &Logger{zap.NewNop().Sugar()}
)

// Logger wraps zap's SugaredLogger
type Logger struct {
	*zap.SugaredLogger
}

// With adds structured fields to the logger and returns a new instance.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Init initializes the global logger and returns the log file path.
//
// DNET_ENV=dev selects human-readable console encoding, anything else JSON.
// level is one of debug, info, warn, error; empty picks debug in dev mode
// and info otherwise.
func Init(level string) string {
	mode := detectMode()
	logPath := selectLogPath(mode)

	atomicLevel := zap.NewAtomicLevelAt(parseLevel(level, mode))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	logger = &Logger{zap.New(core, zap.AddCaller()).Sugar()}

	logger.Infof("logger initialized in %s mode. Writing to %s", mode, logPath)
	return logPath
}

// InitTest creates a lightweight logger for tests that logs to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ := cfg.Build(zap.AddCaller())
	logger = &Logger{raw.Sugar()}
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func detectMode() string {
	switch strings.ToLower(os.Getenv("DNET_ENV")) {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// selectLogPath picks a standard file location for logs.
func selectLogPath(mode string) string {
	fileName := "dnet.log"
	if mode == "dev" {
		fileName = "dnet-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	// Fallback for restrictive environments
	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}

func parseLevel(level, mode string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		if mode == "dev" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}
}
