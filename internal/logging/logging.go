// Package logging provides categorized structured logging for dayboard.
// Logs are written under the state directory with one named zap logger per
// category. When debug mode is off, everything below Warn is discarded and
// no log directory is created.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dayboard/internal/config"
)

// Category names a subsystem's log stream.
type Category string

const (
	CategoryBoot  Category = "boot"  // startup and bootstrap sequence
	CategoryAuth  Category = "auth"  // identity provider calls, sign-in outcomes
	CategoryShell Category = "shell" // TUI shell lifecycle
	CategoryStore Category = "store" // document store client
)

var (
	mu       sync.RWMutex
	root     *zap.Logger
	loggers  = make(map[Category]*zap.Logger)
	initOnce sync.Once
)

// Initialize builds the root logger from configuration. Safe to call more
// than once; only the first call takes effect.
func Initialize(cfg config.LoggingConfig) error {
	var initErr error
	initOnce.Do(func() {
		initErr = build(cfg)
	})
	return initErr
}

func build(cfg config.LoggingConfig) error {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); cfg.Level != "" && err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if !cfg.DebugMode {
		// Production mode: warnings and errors to stderr only.
		encCfg := zap.NewProductionEncoderConfig()
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zapcore.WarnLevel,
		)
		setRoot(zap.New(core))
		return nil
	}

	dir := cfg.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".dayboard", "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "dayboard.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(f)),
		level,
	)
	setRoot(zap.New(core))
	Get(CategoryBoot).Info("logging initialized",
		zap.String("dir", dir),
		zap.String("level", level.String()))
	return nil
}

func setRoot(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	root = l
	loggers = make(map[Category]*zap.Logger)
}

// Get returns the logger for a category, creating it on first use.
// Usable before Initialize; falls back to a nop logger.
func Get(cat Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[cat]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	base := root
	if base == nil {
		base = zap.NewNop()
	}
	l := base.Named(string(cat))
	loggers[cat] = l
	return l
}

// Sync flushes buffered log entries. Called once at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if root != nil {
		_ = root.Sync()
	}
}
