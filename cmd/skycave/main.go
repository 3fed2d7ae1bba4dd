package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path"

	skycave "github.com/robscovell-cx/skycave-management-system"
	"github.com/robscovell-cx/skycave-management-system/config"
	"github.com/robscovell-cx/skycave-management-system/database/badgerdb"
	"github.com/robscovell-cx/skycave-management-system/database/sqlite"
	"github.com/robscovell-cx/skycave-management-system/tm30"
)

func main() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	var (
		dataDir    = path.Join(configDir, "skycave")
		configFile string
		logFile    = path.Join(dataDir, "skycave.log")
	)
	flag.StringVar(&configFile, "config", configFile, "Configuration file location")
	flag.StringVar(&logFile, "log", logFile, "Log file location. The UI owns the terminal, so logs go to a file.")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(openLog(logFile), nil))

	cfg, err := config.Load(configFile, dataDir)
	if err != nil {
		logger.Warn("could not load config file, using defaults", slog.String("error", err.Error()))
		cfg = config.Default(dataDir)
	}

	var db skycave.Database
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		sdb, err := sqlite.Open(path.Join(cfg.Storage.Dir, "skycave.db"), logger)
		if err != nil {
			logger.Error("failed to open sqlite database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = sdb.Close() }()
		db = sdb
	default:
		bdb, err := badgerdb.Open(path.Join(cfg.Storage.Dir, "badger"), logger)
		if err != nil {
			logger.Error("failed to open badger database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = bdb.Close() }()
		db = bdb
	}

	err = skycave.Run(db,
		skycave.UseLogger(logger),
		skycave.UseOutputDir(cfg.Report.OutputDir),
		skycave.UseFormOptions(tm30.FormOptions{
			PropertyName: cfg.Property.Name,
			Signatory:    cfg.Property.Signatory,
			PadRows:      cfg.Report.PadRows,
		}),
	)
	if err != nil {
		logger.Error("run error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openLog opens the log file for appending, creating directories as needed.
// Falls back to discarding logs rather than refusing to start.
func openLog(file string) io.Writer {
	if err := os.MkdirAll(path.Dir(file), 0755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return io.Discard
	}
	return f
}
