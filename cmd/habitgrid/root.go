package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jgoulah/habitgrid/internal/config"
	"github.com/jgoulah/habitgrid/internal/database"
	"github.com/jgoulah/habitgrid/internal/logging"
	"github.com/jgoulah/habitgrid/internal/store"
	"github.com/jgoulah/habitgrid/pkg/models"
)

var (
	cfgFile  string
	dbPath   string
	logLevel string

	logger = zap.NewNop()
	now    = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "habitgrid",
	Short: "Track daily habits with a year-long calendar heat-map",
	Long: `HabitGrid is a CLI habit tracker. Define habits, mark the days you did them,
and view a year of completions as a heat-map with current streak, longest
streak and 30-day completion rate. Data is kept in a local SQLite database.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./habits.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

// setupLogger builds the logger from the flag, falling back to the config
func setupLogger(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		level = cfg.GetLogLevel()
	}

	l, err := logging.New(level)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getDBPath returns the database file path, preferring the flag over the config
func getDBPath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.GetDatabase()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// saveConfig saves the configuration file
func saveConfig(cfg *config.Config) error {
	return config.Save(getConfigPath(), cfg)
}

// today returns the local calendar day
func today() models.Day {
	return models.Today(now())
}

// openProvider opens the storage backend named in the config.
// The returned func releases it.
func openProvider(cfg *config.Config) (store.Provider, func(), error) {
	if cfg.GetStorage() == config.StorageFile && dbPath == "" {
		return database.NewFile(cfg.GetDataFile(), logger), func() {}, nil
	}

	path := getDBPath(cfg)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := database.New(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}

// session is an open store together with the config it was opened with
type session struct {
	cfg   *config.Config
	store *store.Store
	close func()
}

// openSession loads config and data and restores the remembered selection
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	provider, closeFn, err := openProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s, err := store.New(provider, store.WithLogger(logger), store.WithClock(now))
	if err != nil {
		closeFn()
		return nil, err
	}

	if cfg.Selected != "" && !s.Select(cfg.Selected) {
		logger.Debug("remembered selection no longer exists", zap.String("id", cfg.Selected))
	}

	return &session{cfg: cfg, store: s, close: closeFn}, nil
}

// rememberSelection writes the store's selection to the config if it changed
func (s *session) rememberSelection() error {
	id := ""
	if h, ok := s.store.Selected(); ok {
		id = h.ID
	}
	if id == s.cfg.Selected {
		return nil
	}

	s.cfg.Selected = id
	if err := saveConfig(s.cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// resolve finds a habit by id or name, or returns the selection when ref is empty
func (s *session) resolve(ref string) (models.Habit, bool) {
	if ref == "" {
		return s.store.Selected()
	}
	return s.store.Find(ref)
}
