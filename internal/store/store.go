// Package store implements the persisted record collections backing
// the tracker. Collections live in memory as the session's source of
// truth; every mutation rewrites the affected collection to the
// snapshot table as a whole JSON document. A failed write is logged
// and the in-memory state stays authoritative.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sk21munashe/vitality-daily-sub000/internal/db"
	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
)

const (
	keyWaterLogs     = "water_logs"
	keyFoodLogs      = "food_logs"
	keyFitnessLogs   = "fitness_logs"
	keyHabits        = "habits"
	keyHabitLogs     = "habit_logs"
	keySleepLogs     = "sleep_logs"
	keyWeightLogs    = "weight_logs"
	keyProfile       = "user_profile"
	keyHealthProfile = "health_profile"
	keyHealthPlan    = "health_plan"
)

// ErrNotFound is returned when an id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

type Store struct {
	mu     sync.Mutex
	sqldb  *sql.DB
	prefix string
	now    func() time.Time
	newID  func() string
	logger *slog.Logger

	water     []model.WaterLog
	food      []model.FoodLog
	fitness   []model.FitnessLog
	habits    []model.Habit
	habitLogs []model.HabitLog
	habitIdx  map[string]int
	sleep     []model.SleepLog
	weight    []model.WeightLog

	profile model.UserProfile
	health  *model.HealthProfile
	plan    *model.HealthPlan
}

type Option func(*Store)

// WithClock injects the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource overrides record id generation.
func WithIDSource(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New loads every collection from the snapshot table under the given
// key prefix. Missing keys yield the default empty collection or the
// seed profile.
func New(sqldb *sql.DB, prefix string, opts ...Option) (*Store, error) {
	s := &Store{
		sqldb:  sqldb,
		prefix: prefix,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultProfile is the seed used on first run before onboarding sets
// real goals.
func DefaultProfile() model.UserProfile {
	return model.UserProfile{
		Goals: model.Goals{
			WaterGoalML:    2000,
			CalorieGoal:    2000,
			FitnessGoalMin: 30,
		},
		Achievements: []string{},
	}
}

func (s *Store) load() error {
	if err := s.loadKey(keyWaterLogs, &s.water); err != nil {
		return err
	}
	if err := s.loadKey(keyFoodLogs, &s.food); err != nil {
		return err
	}
	if err := s.loadKey(keyFitnessLogs, &s.fitness); err != nil {
		return err
	}
	if err := s.loadKey(keyHabits, &s.habits); err != nil {
		return err
	}
	if err := s.loadKey(keyHabitLogs, &s.habitLogs); err != nil {
		return err
	}
	if err := s.loadKey(keySleepLogs, &s.sleep); err != nil {
		return err
	}
	if err := s.loadKey(keyWeightLogs, &s.weight); err != nil {
		return err
	}

	s.profile = DefaultProfile()
	found, err := s.loadKeyOptional(keyProfile, &s.profile)
	if err != nil {
		return err
	}
	if found && s.profile.Achievements == nil {
		s.profile.Achievements = []string{}
	}

	var health model.HealthProfile
	if found, err = s.loadKeyOptional(keyHealthProfile, &health); err != nil {
		return err
	} else if found {
		s.health = &health
	}
	var plan model.HealthPlan
	if found, err = s.loadKeyOptional(keyHealthPlan, &plan); err != nil {
		return err
	} else if found {
		s.plan = &plan
	}

	s.rebuildHabitIndex()
	return nil
}

func (s *Store) loadKey(key string, dst any) error {
	_, err := s.loadKeyOptional(key, dst)
	return err
}

func (s *Store) loadKeyOptional(key string, dst any) (bool, error) {
	raw, err := db.GetSnapshot(s.sqldb, s.prefix+key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return true, nil
}

// persist rewrites one collection. Failures do not roll back the
// in-memory mutation; they are logged and the session keeps running
// on memory alone.
func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode snapshot", "key", key, "error", err)
		return
	}
	if err := db.PutSnapshot(s.sqldb, s.prefix+key, string(raw)); err != nil {
		s.logger.Error("persist snapshot", "key", key, "error", err)
	}
}

func (s *Store) deleteKey(key string) {
	if err := db.DeleteSnapshot(s.sqldb, s.prefix+key); err != nil {
		s.logger.Error("delete snapshot", "key", key, "error", err)
	}
}

func (s *Store) stamp() (id, date, tod string) {
	now := s.now()
	return s.newID(), now.Format(model.DateLayout), now.Format(model.TimeLayout)
}

// Today returns the current calendar date in the store's layout.
func (s *Store) Today() string {
	return s.now().Format(model.DateLayout)
}

// Now exposes the injected clock for callers that bucket by time.
func (s *Store) Now() time.Time {
	return s.now()
}
