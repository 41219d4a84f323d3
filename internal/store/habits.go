package store

import (
	"fmt"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
)

func habitDayKey(habitID, date string) string {
	return habitID + "|" + date
}

func (s *Store) rebuildHabitIndex() {
	s.habitIdx = make(map[string]int, len(s.habitLogs))
	for i := range s.habitLogs {
		s.habitIdx[habitDayKey(s.habitLogs[i].HabitID, s.habitLogs[i].Date)] = i
	}
}

func (s *Store) AddHabit(name, icon string, color model.HabitColor, targetCount int, unit string) model.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit := model.Habit{
		ID:          s.newID(),
		Name:        name,
		Icon:        icon,
		Color:       color,
		TargetCount: targetCount,
		Unit:        unit,
		CreatedAt:   s.now(),
	}
	s.habits = append(s.habits, habit)
	s.persist(keyHabits, s.habits)
	return habit
}

func (s *Store) Habits() []model.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

func (s *Store) HabitByID(id string) (model.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return model.Habit{}, fmt.Errorf("habit %q: %w", id, ErrNotFound)
}

// RemoveHabit deletes the habit and cascades to every log whose
// habitId matches.
func (s *Store) RemoveHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("habit %q: %w", id, ErrNotFound)
	}

	kept := s.habitLogs[:0]
	for _, l := range s.habitLogs {
		if l.HabitID != id {
			kept = append(kept, l)
		}
	}
	s.habitLogs = kept
	s.rebuildHabitIndex()

	s.persist(keyHabits, s.habits)
	s.persist(keyHabitLogs, s.habitLogs)
	return nil
}

// UpsertHabitLog records count units for the habit on the current
// date. A second log on the same day merges into the existing record
// so each (habitId, date) pair holds at most one row.
func (s *Store) UpsertHabitLog(habitID string, count int) (model.HabitLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := false
	for _, h := range s.habits {
		if h.ID == habitID {
			known = true
			break
		}
	}
	if !known {
		return model.HabitLog{}, fmt.Errorf("habit %q: %w", habitID, ErrNotFound)
	}

	id, date, tod := s.stamp()
	if i, ok := s.habitIdx[habitDayKey(habitID, date)]; ok {
		s.habitLogs[i].Count += count
		s.habitLogs[i].Time = tod
		s.persist(keyHabitLogs, s.habitLogs)
		return s.habitLogs[i], nil
	}

	log := model.HabitLog{ID: id, HabitID: habitID, Date: date, Time: tod, Count: count}
	s.habitLogs = append(s.habitLogs, log)
	s.habitIdx[habitDayKey(habitID, date)] = len(s.habitLogs) - 1
	s.persist(keyHabitLogs, s.habitLogs)
	return log, nil
}

func (s *Store) HabitLogs() []model.HabitLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.HabitLog, len(s.habitLogs))
	copy(out, s.habitLogs)
	return out
}

// HabitCountOn returns the logged count for a habit on a date, zero
// when nothing was logged.
func (s *Store) HabitCountOn(habitID, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.habitIdx[habitDayKey(habitID, date)]; ok {
		return s.habitLogs[i].Count
	}
	return 0
}
