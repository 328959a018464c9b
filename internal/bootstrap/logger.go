package bootstrap

import (
	"log/slog"

	"github.com/osse101/WellnessQuest_Go/internal/config"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// SetupLogger installs the process logger from cfg and logs the startup banner
// along with any configuration warnings.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(cfg.LoggerConfig())

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageBackend)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"timezone", cfg.Location.String(),
		"sqlite_path", cfg.SQLitePath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"workers", cfg.WorkerCount)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
