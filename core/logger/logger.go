package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m3rciful/taskbot/core/buildinfo"
	coreconfig "github.com/m3rciful/taskbot/core/config"
)

var (
	initOnce   sync.Once
	shutdownMu sync.Mutex

	logFile  *os.File
	levelVar slog.LevelVar

	// L is the base logger shared by all components.
	L *slog.Logger

	// DB logs database events.
	DB *slog.Logger
	// TG logs Telegram transport events.
	TG *slog.Logger
	// MIG logs database migration events.
	MIG *slog.Logger
)

// InitLogger configures the global structured logger. It may be called only once.
func InitLogger(cfg *coreconfig.Config) error {
	var initErr error
	initOnce.Do(func() {
		levelVar.Set(selectLevel(cfg))

		out, err := buildOutput(cfg)
		if err != nil {
			initErr = err
			return
		}

		opts := &slog.HandlerOptions{Level: &levelVar}
		var handler slog.Handler
		if selectFormat(cfg) == "json" {
			handler = slog.NewJSONHandler(out, opts)
		} else {
			handler = slog.NewTextHandler(out, opts)
		}

		logger := slog.New(handler)
		L = logger
		slog.SetDefault(logger)

		wireComponents()
		logStartup(cfg)
	})
	return initErr
}

func wireComponents() {
	if L == nil {
		return
	}
	DB = L.With("component", "db")
	TG = L.With("component", "tg")
	MIG = L.With("component", "db.migrate")
}

func logStartup(cfg *coreconfig.Config) {
	if L == nil {
		return
	}
	L.Info("logger initialized",
		slog.String("event", "logger.start"),
		slog.String("level", levelVar.Level().String()),
		slog.String("format", selectFormat(cfg)),
		slog.String("version", buildinfo.Version),
		slog.String("commit", buildinfo.Commit),
	)
}

// Shutdown flushes and closes log outputs. Safe to call multiple times.
func Shutdown() error {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Component returns a logger tagged with the given component name.
// Before InitLogger runs it falls back to the process default logger,
// which keeps unit tests free of init ceremony.
func Component(name string) *slog.Logger {
	base := L
	if base == nil {
		base = slog.Default()
	}
	return base.With("component", name)
}

func selectLevel(cfg *coreconfig.Config) slog.Level {
	level := ""
	if cfg != nil {
		level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	}
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func selectFormat(cfg *coreconfig.Config) string {
	if cfg != nil && strings.EqualFold(strings.TrimSpace(cfg.Logging.Format), "json") {
		return "json"
	}
	return "text"
}

// buildOutput returns stdout, optionally teed into the configured log file.
func buildOutput(cfg *coreconfig.Config) (io.Writer, error) {
	if cfg == nil || cfg.Logging.Dir == "" || cfg.Logging.File == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(cfg.Logging.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(cfg.Logging.Dir, cfg.Logging.File)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	return io.MultiWriter(os.Stdout, f), nil
}
