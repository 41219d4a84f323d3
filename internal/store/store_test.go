package store_test

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/db"
	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vitality.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	return sqldb
}

func newTestStore(t *testing.T, sqldb *sql.DB, now time.Time) *store.Store {
	t.Helper()
	seq := 0
	s, err := store.New(sqldb, "test:",
		store.WithClock(func() time.Time { return now }),
		store.WithIDSource(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestAppendStampsDateAndTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 8, 30, 0, 0, time.Local)
	s := newTestStore(t, newTestDB(t), now)

	log := s.AppendWater(250)
	if log.ID == "" || log.Date != "2026-03-10" || log.Time != "08:30" {
		t.Fatalf("unexpected stamp: %+v", log)
	}
	if got := len(s.Water()); got != 1 {
		t.Fatalf("expected 1 water log, got %d", got)
	}
}

func TestSnapshotsSurviveReload(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	now := time.Date(2026, 3, 10, 8, 30, 0, 0, time.Local)

	s := newTestStore(t, sqldb, now)
	s.AppendWater(250)
	s.AppendWater(500)
	s.AppendWeight(81.4, "morning")
	profile := s.Profile()
	profile.TotalPoints = 120
	profile.Streak = 4
	s.SaveProfile(profile)

	reloaded, err := store.New(sqldb, "test:", store.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	if got := len(reloaded.Water()); got != 2 {
		t.Fatalf("expected 2 water logs after reload, got %d", got)
	}
	if got := reloaded.Weight(); len(got) != 1 || got[0].WeightKg != 81.4 {
		t.Fatalf("unexpected weight logs after reload: %+v", got)
	}
	p := reloaded.Profile()
	if p.TotalPoints != 120 || p.Streak != 4 {
		t.Fatalf("unexpected profile after reload: %+v", p)
	}
}

func TestKeyPrefixIsolatesStores(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	a, err := store.New(sqldb, "alice:", store.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	a.AppendWater(300)

	b, err := store.New(sqldb, "bob:", store.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if got := len(b.Water()); got != 0 {
		t.Fatalf("expected empty store under different prefix, got %d logs", got)
	}
}

func TestUpdateFoodPatchesOnlyGivenFields(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 15, 0, 0, time.Local)
	s := newTestStore(t, newTestDB(t), now)

	log := s.AppendFood(model.MealLunch, model.FoodItem{Name: "Chicken wrap", Calories: 450, ProteinG: 32})
	calories := 480
	updated, err := s.UpdateFood(log.ID, store.FoodPatch{Calories: &calories})
	if err != nil {
		t.Fatalf("update food: %v", err)
	}
	if updated.FoodItem.Calories != 480 || updated.FoodItem.Name != "Chicken wrap" || updated.FoodItem.ProteinG != 32 {
		t.Fatalf("patch touched unexpected fields: %+v", updated.FoodItem)
	}

	if _, err := s.UpdateFood("missing", store.FoodPatch{Calories: &calories}); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestRemoveFood(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 15, 0, 0, time.Local)
	s := newTestStore(t, newTestDB(t), now)

	log := s.AppendFood(model.MealSnack, model.FoodItem{Name: "Apple", Calories: 80})
	if err := s.RemoveFood(log.ID); err != nil {
		t.Fatalf("remove food: %v", err)
	}
	if got := len(s.Food()); got != 0 {
		t.Fatalf("expected 0 food logs, got %d", got)
	}
	if err := s.RemoveFood(log.ID); err == nil {
		t.Fatal("expected error removing twice")
	}
}

func TestHabitLogMergesSameDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local)
	s := newTestStore(t, newTestDB(t), now)

	habit := s.AddHabit("Stretch", "figure.walk", model.HabitGreen, 3, "sessions")

	if _, err := s.UpsertHabitLog(habit.ID, 1); err != nil {
		t.Fatalf("first habit log: %v", err)
	}
	merged, err := s.UpsertHabitLog(habit.ID, 2)
	if err != nil {
		t.Fatalf("second habit log: %v", err)
	}
	if merged.Count != 3 {
		t.Fatalf("expected merged count 3, got %d", merged.Count)
	}
	if got := len(s.HabitLogs()); got != 1 {
		t.Fatalf("expected exactly one log per habit per day, got %d", got)
	}
	if got := s.HabitCountOn(habit.ID, "2026-03-10"); got != 3 {
		t.Fatalf("expected count 3 on the day, got %d", got)
	}

	if _, err := s.UpsertHabitLog("unknown-habit", 1); err == nil {
		t.Fatal("expected error logging unknown habit")
	}
}

func TestRemoveHabitCascadesToLogs(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	current := day
	seq := 0
	s, err := store.New(sqldb, "test:",
		store.WithClock(func() time.Time { return current }),
		store.WithIDSource(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	habit := s.AddHabit("Read", "book", model.HabitBlue, 1, "chapters")
	other := s.AddHabit("Meditate", "brain", model.HabitPurple, 1, "sessions")
	for i := 0; i < 5; i++ {
		current = day.AddDate(0, 0, i)
		if _, err := s.UpsertHabitLog(habit.ID, 1); err != nil {
			t.Fatalf("log habit day %d: %v", i, err)
		}
	}
	if _, err := s.UpsertHabitLog(other.ID, 1); err != nil {
		t.Fatalf("log other habit: %v", err)
	}

	if err := s.RemoveHabit(habit.ID); err != nil {
		t.Fatalf("remove habit: %v", err)
	}
	for _, l := range s.HabitLogs() {
		if l.HabitID == habit.ID {
			t.Fatalf("expected cascade delete, found log %+v", l)
		}
	}
	if got := len(s.HabitLogs()); got != 1 {
		t.Fatalf("expected the other habit's log to survive, got %d logs", got)
	}
	if _, err := s.HabitByID(habit.ID); err == nil {
		t.Fatal("expected habit to be gone")
	}

	// The surviving log must still merge correctly after the index
	// rebuild.
	merged, err := s.UpsertHabitLog(other.ID, 2)
	if err != nil {
		t.Fatalf("log other habit again: %v", err)
	}
	if merged.Count != 3 {
		t.Fatalf("expected merged count 3 after cascade, got %d", merged.Count)
	}
}

func TestResetAllClearsEverything(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	s := newTestStore(t, sqldb, now)

	s.AppendWater(500)
	s.AppendFitness("running", 30, 280, "")
	profile := s.Profile()
	profile.TotalPoints = 400
	profile.Achievements = []string{"first-water"}
	s.SaveProfile(profile)
	s.SavePlan(model.HealthPlan{DailyCalories: 2100})

	s.ResetAll()

	if len(s.Water()) != 0 || len(s.Fitness()) != 0 {
		t.Fatal("expected collections cleared")
	}
	p := s.Profile()
	if p.TotalPoints != 0 || len(p.Achievements) != 0 {
		t.Fatalf("expected seed profile, got %+v", p)
	}
	if s.Plan() != nil {
		t.Fatal("expected plan cleared")
	}

	reloaded, err := store.New(sqldb, "test:", store.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	if len(reloaded.Water()) != 0 || reloaded.Plan() != nil {
		t.Fatal("expected reset to persist")
	}
}
