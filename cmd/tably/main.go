package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/tably/internal/config"
	"github.com/xonecas/tably/internal/sheet"
	"github.com/xonecas/tably/internal/store"
	"github.com/xonecas/tably/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tably: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.String("config", "", "path to config file")
	dbFlag := flag.String("db", "", "path to sheet database")
	logLevelFlag := flag.String("log-level", "", "log level: trace, debug, info, warn, error")
	flag.Parse()

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	configPath := *configFlag
	if configPath == "" {
		if configPath, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if *dbFlag != "" {
		cfg.Storage.Path = *dbFlag
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// Log to a file: stderr belongs to the TUI.
	logFile, err := setupLogging(dataDir, cfg.Log.LevelOrDefault())
	if err != nil {
		return err
	}
	defer logFile.Close()

	dbPath := cfg.Storage.Path
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "sheets.db")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	sheetID := flag.Arg(0)
	if sheetID == "" {
		sheetID = uuid.NewString()
	}
	tbl := loadTable(st, sheetID)

	p := tea.NewProgram(tui.New(tbl, sheetID, st, cfg))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// loadTable resolves the starting table for a sheet id: the stored
// document when one exists and decodes, the default table otherwise.
func loadTable(st *store.Store, id string) sheet.Table {
	body, ok := st.Load(id)
	if !ok {
		return sheet.Default()
	}
	tbl, err := sheet.UnmarshalDocument(body)
	if err != nil {
		log.Warn().Err(err).Str("sheet", id).Msg("stored document is malformed")
		return sheet.Default()
	}
	return tbl
}

func setupLogging(dataDir, level string) (*os.File, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	f, err := os.OpenFile(filepath.Join(dataDir, "tably.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
