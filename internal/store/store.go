// Package store holds the habit collection in memory and persists it
// after every mutation.
package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jgoulah/habitgrid/pkg/models"
)

var (
	// ErrEmptyName is returned by Create when the name is blank
	ErrEmptyName = errors.New("habit name is empty")
	// ErrInvalidDay is returned by Toggle when the day is not YYYY-MM-DD
	ErrInvalidDay = errors.New("invalid day")
)

// Provider loads and saves the full habit collection
type Provider interface {
	Load() ([]models.Habit, error)
	Save(habits []models.Habit) error
}

// Store is the in-memory habit collection. It is not safe for concurrent use.
type Store struct {
	provider   Provider
	habits     []models.Habit
	selectedID string

	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock sets the clock used for CreatedDate
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the habit id generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New loads the collection from provider and selects the first habit, if any
func New(provider Provider, opts ...Option) (*Store, error) {
	s := &Store{
		provider: provider,
		logger:   zap.NewNop(),
		now:      time.Now,
		newID:    newID,
	}
	for _, opt := range opts {
		opt(s)
	}

	habits, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("loading habits: %w", err)
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	s.habits = habits

	if len(s.habits) > 0 {
		s.selectedID = s.habits[0].ID
	}

	s.logger.Debug("habit store loaded", zap.Int("habits", len(s.habits)))
	return s, nil
}

// newID returns a UUIDv7: a millisecond timestamp prefix followed by random bits
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Create adds a habit named name and selects it
func (s *Store) Create(name, color string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrEmptyName
	}

	habit := models.Habit{
		ID:          s.newID(),
		Name:        name,
		Color:       color,
		CreatedDate: models.Today(s.now()).String(),
		Completions: map[string]bool{},
	}
	s.habits = append(s.habits, habit)

	if err := s.save(); err != nil {
		s.habits = s.habits[:len(s.habits)-1]
		return models.Habit{}, err
	}

	s.selectedID = habit.ID
	s.logger.Info("habit created", zap.String("id", habit.ID), zap.String("name", habit.Name))
	return habit.Clone(), nil
}

// Delete removes the habit with the given id. Unknown ids are ignored.
// If the selected habit is removed, the first remaining habit becomes selected.
func (s *Store) Delete(id string) error {
	before := s.habits
	s.habits = slices.DeleteFunc(slices.Clone(s.habits), func(h models.Habit) bool { return h.ID == id })

	if err := s.save(); err != nil {
		s.habits = before
		return err
	}

	if s.selectedID == id {
		s.selectedID = ""
		if len(s.habits) > 0 {
			s.selectedID = s.habits[0].ID
		}
	}

	if len(s.habits) < len(before) {
		s.logger.Info("habit deleted", zap.String("id", id))
	}
	return nil
}

// Toggle flips the completion flag of day for the habit with the given id.
// Unknown ids are ignored.
func (s *Store) Toggle(id, day string) error {
	if _, err := models.ParseDay(day); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	i := s.index(id)
	if i < 0 {
		return nil
	}

	habit := &s.habits[i]
	if habit.Completions == nil {
		habit.Completions = map[string]bool{}
	}
	habit.Completions[day] = !habit.Completions[day]

	if err := s.save(); err != nil {
		habit.Completions[day] = !habit.Completions[day]
		return err
	}

	s.logger.Debug("completion toggled",
		zap.String("id", id),
		zap.String("day", day),
		zap.Bool("completed", habit.Completions[day]))
	return nil
}

// Select makes the habit with the given id the selected one.
// It reports false, leaving the selection alone, if there is no such habit.
func (s *Store) Select(id string) bool {
	if s.index(id) < 0 {
		return false
	}
	s.selectedID = id
	return true
}

// Selected returns the selected habit, or false when nothing is selected
func (s *Store) Selected() (models.Habit, bool) {
	return s.Get(s.selectedID)
}

// Get returns the habit with the given id
func (s *Store) Get(id string) (models.Habit, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return s.habits[i].Clone(), true
}

// Find looks a habit up by id, then by case-insensitive name
func (s *Store) Find(ref string) (models.Habit, bool) {
	if h, ok := s.Get(ref); ok {
		return h, true
	}
	ref = strings.TrimSpace(ref)
	for _, h := range s.habits {
		if strings.EqualFold(h.Name, ref) {
			return h.Clone(), true
		}
	}
	return models.Habit{}, false
}

// List returns a copy of the collection in creation order
func (s *Store) List() []models.Habit {
	out := make([]models.Habit, len(s.habits))
	for i, h := range s.habits {
		out[i] = h.Clone()
	}
	return out
}

// Len returns the number of habits
func (s *Store) Len() int {
	return len(s.habits)
}

func (s *Store) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.habits, func(h models.Habit) bool { return h.ID == id })
}

func (s *Store) save() error {
	if err := s.provider.Save(s.habits); err != nil {
		return fmt.Errorf("saving habits: %w", err)
	}
	return nil
}
