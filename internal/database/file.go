package database

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jgoulah/habitgrid/pkg/models"
)

// File stores the habit collection as a single JSON document on disk
type File struct {
	path   string
	logger *zap.Logger
}

// NewFile returns a provider backed by the file at path
func NewFile(path string, logger *zap.Logger) *File {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &File{path: path, logger: logger}
}

// Path returns the file location
func (f *File) Path() string {
	return f.path
}

// Load reads the collection. A missing or unparseable file loads as empty.
func (f *File) Load() ([]models.Habit, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Habit{}, nil
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	habits, err := models.DecodeHabits(data)
	if err != nil {
		f.logger.Warn("ignoring malformed data file", zap.String("path", f.path), zap.Error(err))
		return []models.Habit{}, nil
	}
	return habits, nil
}

// Save writes the collection, replacing the file atomically
func (f *File) Save(habits []models.Habit) error {
	data, err := models.EncodeHabits(habits)
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}

	return nil
}
