package tracker_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/db"
	"github.com/sk21munashe/vitality-daily-sub000/internal/gamify"
	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/store"
	"github.com/sk21munashe/vitality-daily-sub000/internal/syncer"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

type fixture struct {
	sqldb *sql.DB
	now   time.Time
	mu    sync.Mutex
}

func (f *fixture) clock() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fixture) setNow(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

func newFixture(t *testing.T) *fixture {
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
	return &fixture{
		sqldb: sqldb,
		now:   time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local),
	}
}

func newTracker(t *testing.T, f *fixture, opts ...tracker.Option) *tracker.Tracker {
	t.Helper()
	s, err := store.New(f.sqldb, "test:", store.WithClock(f.clock))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return tracker.New(s, opts...)
}

// fakeRemote is a deterministic syncer.Remote substitute.
type fakeRemote struct {
	mu      sync.Mutex
	fail    bool
	stored  map[string]syncer.Payload
	upserts int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{stored: make(map[string]syncer.Payload)}
}

func (f *fakeRemote) Fetch(ctx context.Context, userID string) (*syncer.Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("remote down")
	}
	p, ok := f.stored[userID]
	if !ok {
		return nil, syncer.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRemote) Upsert(ctx context.Context, userID string, payload syncer.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if f.fail {
		return errors.New("remote down")
	}
	f.stored[userID] = payload
	return nil
}

func TestWaterGoalScenario(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tr := newTracker(t, f)
	if _, err := tr.UpdateGoals(tracker.GoalsPatch{WaterGoalML: intp(2000)}); err != nil {
		t.Fatalf("update goals: %v", err)
	}

	for _, ml := range []int{250, 250, 250, 500} {
		if _, _, err := tr.LogWater(ml); err != nil {
			t.Fatalf("log water %d: %v", ml, err)
		}
	}

	dash := tr.Dashboard()
	if dash.Water.Current != 1250 {
		t.Fatalf("expected today's total 1250, got %v", dash.Water.Current)
	}
	if dash.Water.Percent != 62.5 {
		t.Fatalf("expected 62.5%% progress, got %v", dash.Water.Percent)
	}
	if dash.DailyComplete {
		t.Fatal("goal must not be met at 1250/2000")
	}
}

func TestWaterValidation(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, newFixture(t))
	if _, _, err := tr.LogWater(0); err == nil {
		t.Fatal("expected error for 0 ml")
	}
	if _, _, err := tr.LogWater(-50); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if _, _, err := tr.LogWater(5001); err == nil {
		t.Fatal("expected error above 5000 ml")
	}
	if got := len(tr.Store().Water()); got != 0 {
		t.Fatalf("rejected input must never be stored, got %d logs", got)
	}
}

func TestPointsMonotonicity(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tr := newTracker(t, f)
	// Keep the water goal unreachable so the daily bonus stays out of
	// the arithmetic.
	if _, err := tr.UpdateGoals(tracker.GoalsPatch{WaterGoalML: intp(100000)}); err != nil {
		t.Fatalf("update goals: %v", err)
	}

	var want int
	if _, _, err := tr.LogWater(250); err != nil {
		t.Fatal(err)
	}
	want += gamify.PointsWater
	if _, _, err := tr.LogFood(model.MealLunch, model.FoodItem{Name: "Soup", Calories: 200}); err != nil {
		t.Fatal(err)
	}
	want += gamify.PointsFood
	if _, _, err := tr.LogFitness("cycling", 45, 300, ""); err != nil {
		t.Fatal(err)
	}
	want += gamify.PointsFitness
	habit, err := tr.CreateHabit("Stretch", "figure", model.HabitGreen, 2, "sessions")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := tr.LogHabit(habit.ID, 1); err != nil {
		t.Fatal(err)
	}
	want += gamify.PointsHabit

	if got := tr.Profile().TotalPoints; got != want {
		t.Fatalf("expected %d points, got %d", want, got)
	}
}

func TestDailyCompletionBonusAwardedExactlyOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tr := newTracker(t, f)
	if _, err := tr.UpdateGoals(tracker.GoalsPatch{WaterGoalML: intp(2000)}); err != nil {
		t.Fatalf("update goals: %v", err)
	}

	if _, _, err := tr.LogFood(model.MealBreakfast, model.FoodItem{Name: "Oats", Calories: 300}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := tr.LogFood(model.MealLunch, model.FoodItem{Name: "Salad", Calories: 500}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := tr.LogFood(model.MealDinner, model.FoodItem{Name: "Salmon", Calories: 600}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := tr.LogFitness("running", 35, 350, ""); err != nil {
		t.Fatal(err)
	}

	// The final water log tips every goal over at once; the bonus must
	// ride on that action.
	_, result, err := tr.LogWater(2200)
	if err != nil {
		t.Fatal(err)
	}
	if !result.BonusAwarded {
		t.Fatal("expected bonus on the completing action")
	}
	pointsAfterBonus := tr.Profile().TotalPoints

	// Re-checking any number of times the same day must not re-credit.
	for i := 0; i < 3; i++ {
		completed, again := tr.CheckDailyCompletion()
		if !completed {
			t.Fatal("expected day to remain complete")
		}
		if again.BonusAwarded {
			t.Fatal("bonus credited twice for the same day")
		}
	}
	if got := tr.Profile().TotalPoints; got != pointsAfterBonus {
		t.Fatalf("points drifted on re-check: %d != %d", got, pointsAfterBonus)
	}

	// A later logging action that day must not re-trigger it either.
	_, result, err = tr.LogWater(100)
	if err != nil {
		t.Fatal(err)
	}
	if result.BonusAwarded {
		t.Fatal("bonus credited twice via a later log")
	}

	// The next day starts a fresh bonus window.
	f.setNow(f.clock().AddDate(0, 0, 1))
	if completed, _ := tr.CheckDailyCompletion(); completed {
		t.Fatal("new day with no logs must not be complete")
	}
}

func TestStreakAcrossSessions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tr := newTracker(t, f)

	// First run: no credit.
	session := tr.StartSession(context.Background())
	if session.Streak != 0 {
		t.Fatalf("first run streak must stay 0, got %d", session.Streak)
	}

	// Next day continues.
	f.setNow(f.clock().AddDate(0, 0, 1))
	session = tr.StartSession(context.Background())
	if session.Streak != 1 || session.StreakBroke {
		t.Fatalf("expected streak 1, got %+v", session)
	}

	// Same-day revisit unchanged.
	session = tr.StartSession(context.Background())
	if session.Streak != 1 {
		t.Fatalf("same-day revisit changed streak to %d", session.Streak)
	}

	// Two days later: broken.
	f.setNow(f.clock().AddDate(0, 0, 3))
	session = tr.StartSession(context.Background())
	if session.Streak != 0 || !session.StreakBroke {
		t.Fatalf("expected broken streak, got %+v", session)
	}
}

func TestStreakAchievementUnlocksOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tr := newTracker(t, f)
	tr.StartSession(context.Background())

	for i := 1; i <= 4; i++ {
		f.setNow(f.clock().AddDate(0, 0, 1))
		tr.StartSession(context.Background())
	}
	profile := tr.Profile()
	if profile.Streak != 4 {
		t.Fatalf("expected streak 4, got %d", profile.Streak)
	}
	if !profile.HasAchievement("streak-3") {
		t.Fatal("expected streak-3 unlocked")
	}

	// Unlocks survive a broken streak.
	f.setNow(f.clock().AddDate(0, 0, 5))
	tr.StartSession(context.Background())
	profile = tr.Profile()
	if !profile.HasAchievement("streak-3") {
		t.Fatal("achievements must be monotonic")
	}
}

func TestFirstLogAchievementDelta(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, newFixture(t))
	_, result, err := tr.LogWater(300)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.NewAchievements) != 1 || result.NewAchievements[0] != "first-water" {
		t.Fatalf("expected first-water delta, got %v", result.NewAchievements)
	}
	_, result, err = tr.LogWater(300)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range result.NewAchievements {
		if id == "first-water" {
			t.Fatal("first-water reported twice")
		}
	}
}

func TestUpdateGoalsShallowMerge(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, newFixture(t))
	if _, err := tr.UpdateGoals(tracker.GoalsPatch{WaterGoalML: intp(2500), CalorieGoal: intp(1800)}); err != nil {
		t.Fatal(err)
	}
	goals, err := tr.UpdateGoals(tracker.GoalsPatch{FitnessGoalMin: intp(45)})
	if err != nil {
		t.Fatal(err)
	}
	if goals.WaterGoalML != 2500 || goals.CalorieGoal != 1800 || goals.FitnessGoalMin != 45 {
		t.Fatalf("merge clobbered untouched goals: %+v", goals)
	}
	if _, err := tr.UpdateGoals(tracker.GoalsPatch{WaterGoalML: intp(-1)}); err == nil {
		t.Fatal("expected error for negative goal")
	}
}

func TestSleepValidationAndOvernightDuration(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, newFixture(t))
	log, err := tr.LogSleep("23:30", "07:00", 4)
	if err != nil {
		t.Fatalf("log sleep: %v", err)
	}
	if log.DurationMin != 450 {
		t.Fatalf("expected 450 min across midnight, got %d", log.DurationMin)
	}
	if _, err := tr.LogSleep("25:00", "07:00", 4); err == nil {
		t.Fatal("expected error for invalid bedtime")
	}
	if _, err := tr.LogSleep("23:00", "07:00", 9); err == nil {
		t.Fatal("expected error for quality out of range")
	}
}

func TestWeightValidation(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, newFixture(t))
	if _, err := tr.LogWeight(-2, ""); err == nil {
		t.Fatal("expected error for negative weight")
	}
	if _, err := tr.LogWeight(0, ""); err == nil {
		t.Fatal("expected error for zero weight")
	}
	if _, err := tr.LogWeight(81.2, "after run"); err != nil {
		t.Fatalf("log weight: %v", err)
	}
}

func TestMirrorFailureNeverFailsLocalCommit(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	remote := newFakeRemote()
	remote.fail = true
	tr := newTracker(t, f, tracker.WithRemote(remote, "user-1"))

	tr.SavePlan(model.HealthPlan{DailyCalories: 2100})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tr.WaitForMirror(ctx); err != nil {
		t.Fatalf("mirror attempt never finished: %v", err)
	}

	if got := tr.Plan(); got == nil || got.DailyCalories != 2100 {
		t.Fatalf("local plan must survive remote failure, got %+v", got)
	}
}

func TestMirrorShipsLatestSnapshot(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	remote := newFakeRemote()
	tr := newTracker(t, f, tracker.WithRemote(remote, "user-1"))

	tr.SaveHealthProfile(model.HealthProfile{Name: "Sam", Age: 30, HeightCm: 180, WeightKg: 80})
	tr.SavePlan(model.HealthPlan{DailyCalories: 2100})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := 0; i < 2; i++ {
		if err := tr.WaitForMirror(ctx); err != nil {
			t.Fatalf("mirror attempt %d never finished: %v", i+1, err)
		}
	}

	remote.mu.Lock()
	payload := remote.stored["user-1"]
	remote.mu.Unlock()
	var health model.HealthProfile
	if err := json.Unmarshal(payload.HealthProfile, &health); err != nil || health.Name != "Sam" {
		t.Fatalf("unexpected mirrored profile: %s (%v)", payload.HealthProfile, err)
	}
}

func TestSessionRestoresFromRemoteWhenLocalEmpty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	remote := newFakeRemote()
	remote.stored["user-1"] = syncer.Payload{
		HealthProfile: json.RawMessage(`{"name":"Sam","age":30,"height":180,"weight":80}`),
		HealthPlan:    json.RawMessage(`{"dailyCalories":2300}`),
	}
	tr := newTracker(t, f, tracker.WithRemote(remote, "user-1"))

	tr.StartSession(context.Background())

	if got := tr.HealthProfile(); got == nil || got.Name != "Sam" {
		t.Fatalf("expected restored health profile, got %+v", got)
	}
	if got := tr.Plan(); got == nil || got.DailyCalories != 2300 {
		t.Fatalf("expected restored plan, got %+v", got)
	}
}

func TestSessionKeepsLocalWhenRemoteDown(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	remote := newFakeRemote()
	remote.fail = true
	tr := newTracker(t, f, tracker.WithRemote(remote, "user-1"))

	// Must not panic or error; local defaults stay in place.
	session := tr.StartSession(context.Background())
	if session.Streak != 0 {
		t.Fatalf("unexpected session: %+v", session)
	}
	if tr.Plan() != nil {
		t.Fatal("expected no plan when remote is down and local is empty")
	}
}

func TestChartWindows(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tr := newTracker(t, f)
	if _, _, err := tr.LogWater(500); err != nil {
		t.Fatal(err)
	}

	buckets, err := tr.ChartData("water", 7)
	if err != nil {
		t.Fatalf("chart data: %v", err)
	}
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	if buckets[6].Value != 500 {
		t.Fatalf("expected today's bucket to hold 500, got %v", buckets[6].Value)
	}

	if _, err := tr.ChartData("water", 13); err == nil {
		t.Fatal("expected error for unsupported window")
	}
	if _, err := tr.ChartData("mood", 7); err == nil {
		t.Fatal("expected error for unknown metric")
	}

	monthly, err := tr.MonthlyChart("calories")
	if err != nil {
		t.Fatalf("monthly chart: %v", err)
	}
	if len(monthly) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(monthly))
	}
}

func TestResetDataDropsPoints(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, newFixture(t))
	if _, _, err := tr.LogWater(400); err != nil {
		t.Fatal(err)
	}
	if tr.Profile().TotalPoints == 0 {
		t.Fatal("expected points before reset")
	}
	tr.ResetData()
	if got := tr.Profile().TotalPoints; got != 0 {
		t.Fatalf("expected 0 points after reset, got %d", got)
	}
}

func intp(v int) *int { return &v }
