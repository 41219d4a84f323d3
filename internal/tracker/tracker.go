// Package tracker is the application's state container. It owns the
// record store, applies the streak/points/achievement rules on every
// logging action, and mirrors the plan to the remote table when a
// session exists. One Tracker is constructed at startup and handed to
// every surface.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/gamify"
	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/store"
	"github.com/sk21munashe/vitality-daily-sub000/internal/syncer"
)

const maxWaterPerLogML = 5000

type Tracker struct {
	store  *store.Store
	remote syncer.Remote
	userID string
	logger *slog.Logger

	// mirrorDone is signalled after each fire-and-forget mirror
	// attempt so tests can wait for the goroutine.
	mirrorDone chan struct{}
}

type Option func(*Tracker)

// WithRemote attaches the best-effort mirror for the given user.
func WithRemote(remote syncer.Remote, userID string) Option {
	return func(t *Tracker) {
		t.remote = remote
		t.userID = userID
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

func New(s *store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:      s,
		logger:     slog.Default(),
		mirrorDone: make(chan struct{}, 16),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Store() *store.Store {
	return t.store
}

// LogResult reports what a successful logging action earned.
type LogResult struct {
	PointsAwarded   int      `json:"pointsAwarded"`
	BonusAwarded    bool     `json:"bonusAwarded"`
	NewAchievements []string `json:"newAchievements,omitempty"`
}

// Session describes the streak state after a visit.
type Session struct {
	Streak      int  `json:"streak"`
	StreakBroke bool `json:"streakBroke"`
}

// StartSession runs the once-per-load streak transition, stamps the
// visit date, and pulls the remote record when the local plan cache is
// empty. Remote failures fall back to local data.
func (t *Tracker) StartSession(ctx context.Context) Session {
	profile := t.store.Profile()
	today := t.store.Today()

	before := profile.Streak
	profile.Streak = gamify.StreakTransition(profile.LastVisitDate, today, profile.Streak)
	broke := profile.LastVisitDate != "" && profile.Streak < before
	profile.LastVisitDate = today

	fresh := gamify.Evaluate(profile.Achievements, t.snapshot(profile))
	profile.Achievements = append(profile.Achievements, fresh...)
	t.store.SaveProfile(profile)

	t.restoreFromRemote(ctx)

	return Session{Streak: profile.Streak, StreakBroke: broke}
}

func (t *Tracker) restoreFromRemote(ctx context.Context) {
	if t.remote == nil {
		return
	}
	if t.store.HealthProfile() != nil || t.store.Plan() != nil {
		return
	}
	payload, err := t.remote.Fetch(ctx, t.userID)
	if err != nil {
		t.logger.Warn("remote restore skipped", "user", t.userID, "error", err)
		return
	}
	if len(payload.HealthProfile) > 0 {
		var health model.HealthProfile
		if err := json.Unmarshal(payload.HealthProfile, &health); err != nil {
			t.logger.Warn("remote health profile unreadable", "error", err)
		} else {
			t.store.SaveHealthProfile(health)
		}
	}
	if len(payload.HealthPlan) > 0 {
		var plan model.HealthPlan
		if err := json.Unmarshal(payload.HealthPlan, &plan); err != nil {
			t.logger.Warn("remote health plan unreadable", "error", err)
		} else {
			t.store.SavePlan(plan)
		}
	}
}

func (t *Tracker) LogWater(amountML int) (model.WaterLog, LogResult, error) {
	if amountML <= 0 {
		return model.WaterLog{}, LogResult{}, fmt.Errorf("water amount must be > 0 ml")
	}
	if amountML > maxWaterPerLogML {
		return model.WaterLog{}, LogResult{}, fmt.Errorf("water amount must be <= %d ml", maxWaterPerLogML)
	}
	log := t.store.AppendWater(amountML)
	return log, t.credit(gamify.PointsWater), nil
}

func (t *Tracker) LogFood(meal model.MealType, item model.FoodItem) (model.FoodLog, LogResult, error) {
	if !meal.Valid() {
		return model.FoodLog{}, LogResult{}, fmt.Errorf("invalid meal type %q", meal)
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return model.FoodLog{}, LogResult{}, fmt.Errorf("food name is required")
	}
	if item.Calories < 0 || item.ProteinG < 0 || item.CarbsG < 0 || item.FatG < 0 {
		return model.FoodLog{}, LogResult{}, fmt.Errorf("nutrition values must be >= 0")
	}
	log := t.store.AppendFood(meal, item)
	return log, t.credit(gamify.PointsFood), nil
}

// UpdateFoodLog edits a stored meal; edits earn no points.
func (t *Tracker) UpdateFoodLog(id string, patch store.FoodPatch) (model.FoodLog, error) {
	if patch.Calories != nil && *patch.Calories < 0 {
		return model.FoodLog{}, fmt.Errorf("calories must be >= 0")
	}
	if patch.MealType != nil && !patch.MealType.Valid() {
		return model.FoodLog{}, fmt.Errorf("invalid meal type %q", *patch.MealType)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.FoodLog{}, fmt.Errorf("food name is required")
	}
	return t.store.UpdateFood(id, patch)
}

func (t *Tracker) DeleteFoodLog(id string) error {
	return t.store.RemoveFood(id)
}

func (t *Tracker) LogFitness(activityType string, durationMin, caloriesBurned int, notes string) (model.FitnessLog, LogResult, error) {
	activityType = strings.TrimSpace(activityType)
	if activityType == "" {
		return model.FitnessLog{}, LogResult{}, fmt.Errorf("activity type is required")
	}
	if durationMin <= 0 {
		return model.FitnessLog{}, LogResult{}, fmt.Errorf("duration must be > 0 minutes")
	}
	if caloriesBurned < 0 {
		return model.FitnessLog{}, LogResult{}, fmt.Errorf("calories burned must be >= 0")
	}
	log := t.store.AppendFitness(activityType, durationMin, caloriesBurned, notes)
	return log, t.credit(gamify.PointsFitness), nil
}

func (t *Tracker) CreateHabit(name, icon string, color model.HabitColor, targetCount int, unit string) (model.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Habit{}, fmt.Errorf("habit name is required")
	}
	if !color.Valid() {
		return model.Habit{}, fmt.Errorf("invalid habit color %q", color)
	}
	if targetCount <= 0 {
		return model.Habit{}, fmt.Errorf("target count must be > 0")
	}
	return t.store.AddHabit(name, icon, color, targetCount, unit), nil
}

func (t *Tracker) DeleteHabit(id string) error {
	return t.store.RemoveHabit(id)
}

func (t *Tracker) LogHabit(habitID string, count int) (model.HabitLog, LogResult, error) {
	if count <= 0 {
		return model.HabitLog{}, LogResult{}, fmt.Errorf("habit count must be > 0")
	}
	log, err := t.store.UpsertHabitLog(habitID, count)
	if err != nil {
		return model.HabitLog{}, LogResult{}, err
	}
	return log, t.credit(gamify.PointsHabit), nil
}

func (t *Tracker) LogSleep(bedtime, wakeTime string, quality int) (model.SleepLog, error) {
	bed, err := time.Parse(model.TimeLayout, strings.TrimSpace(bedtime))
	if err != nil {
		return model.SleepLog{}, fmt.Errorf("invalid bedtime %q (expected HH:MM)", bedtime)
	}
	wake, err := time.Parse(model.TimeLayout, strings.TrimSpace(wakeTime))
	if err != nil {
		return model.SleepLog{}, fmt.Errorf("invalid wake time %q (expected HH:MM)", wakeTime)
	}
	if quality < 1 || quality > 5 {
		return model.SleepLog{}, fmt.Errorf("sleep quality must be between 1 and 5")
	}
	duration := int(wake.Sub(bed).Minutes())
	if duration <= 0 {
		// Bedtime before midnight, wake after.
		duration += 24 * 60
	}
	return t.store.AppendSleep(bed.Format(model.TimeLayout), wake.Format(model.TimeLayout), duration, quality), nil
}

func (t *Tracker) LogWeight(weightKg float64, notes string) (model.WeightLog, error) {
	if weightKg <= 0 || weightKg > 500 {
		return model.WeightLog{}, fmt.Errorf("weight must be between 0 and 500 kg")
	}
	return t.store.AppendWeight(weightKg, notes), nil
}

// GoalsPatch carries the goal fields to merge; nil fields are left
// untouched.
type GoalsPatch struct {
	WaterGoalML    *int              `json:"waterGoal,omitempty"`
	CalorieGoal    *int              `json:"calorieGoal,omitempty"`
	FitnessGoalMin *int              `json:"fitnessGoal,omitempty"`
	Macros         *model.MacroGoals `json:"macros,omitempty"`
}

// UpdateGoals shallow-merges the patch into the profile's goals.
func (t *Tracker) UpdateGoals(patch GoalsPatch) (model.Goals, error) {
	if patch.WaterGoalML != nil && *patch.WaterGoalML < 0 {
		return model.Goals{}, fmt.Errorf("water goal must be >= 0")
	}
	if patch.CalorieGoal != nil && *patch.CalorieGoal < 0 {
		return model.Goals{}, fmt.Errorf("calorie goal must be >= 0")
	}
	if patch.FitnessGoalMin != nil && *patch.FitnessGoalMin < 0 {
		return model.Goals{}, fmt.Errorf("fitness goal must be >= 0")
	}

	profile := t.store.Profile()
	if patch.WaterGoalML != nil {
		profile.Goals.WaterGoalML = *patch.WaterGoalML
	}
	if patch.CalorieGoal != nil {
		profile.Goals.CalorieGoal = *patch.CalorieGoal
	}
	if patch.FitnessGoalMin != nil {
		profile.Goals.FitnessGoalMin = *patch.FitnessGoalMin
	}
	if patch.Macros != nil {
		m := *patch.Macros
		profile.Goals.Macros = &m
	}
	t.store.SaveProfile(profile)
	return profile.Goals, nil
}

func (t *Tracker) UpdateProfile(name, avatar *string) model.UserProfile {
	profile := t.store.Profile()
	if name != nil {
		profile.Name = strings.TrimSpace(*name)
	}
	if avatar != nil {
		profile.Avatar = *avatar
	}
	t.store.SaveProfile(profile)
	return profile
}

func (t *Tracker) Profile() model.UserProfile {
	return t.store.Profile()
}

// ResetData is the explicit bulk reset, the one sanctioned path on
// which points decrease.
func (t *Tracker) ResetData() {
	t.store.ResetAll()
}

// CheckDailyCompletion reports whether today's goals are all met and
// awards the +50 bonus at most once per calendar day. Safe to call
// any number of times.
func (t *Tracker) CheckDailyCompletion() (completed bool, result LogResult) {
	profile := t.store.Profile()
	today := t.store.Today()
	completed = t.dailyGoalsMetOn(today, profile)
	if !completed {
		return false, LogResult{}
	}
	if profile.LastBonusDate == today {
		return true, LogResult{}
	}
	profile.LastBonusDate = today
	profile.TotalPoints += gamify.PointsDailyBonus
	fresh := gamify.Evaluate(profile.Achievements, t.snapshot(profile))
	profile.Achievements = append(profile.Achievements, fresh...)
	t.store.SaveProfile(profile)
	return true, LogResult{
		PointsAwarded:   gamify.PointsDailyBonus,
		BonusAwarded:    true,
		NewAchievements: fresh,
	}
}

// credit runs the post-log bookkeeping: fixed points, the opportunistic
// daily-bonus check, and the achievement delta.
func (t *Tracker) credit(points int) LogResult {
	profile := t.store.Profile()
	profile.TotalPoints += points
	result := LogResult{PointsAwarded: points}

	today := t.store.Today()
	if t.dailyGoalsMetOn(today, profile) && profile.LastBonusDate != today {
		profile.LastBonusDate = today
		profile.TotalPoints += gamify.PointsDailyBonus
		result.PointsAwarded += gamify.PointsDailyBonus
		result.BonusAwarded = true
	}

	fresh := gamify.Evaluate(profile.Achievements, t.snapshot(profile))
	profile.Achievements = append(profile.Achievements, fresh...)
	result.NewAchievements = fresh

	t.store.SaveProfile(profile)
	return result
}

func (t *Tracker) dailyGoalsMetOn(date string, profile model.UserProfile) bool {
	waterML := int(sumPoints(t.waterPoints(), date))
	meals := countPoints(t.caloriePoints(), date)
	fitnessMin := int(sumPoints(t.fitnessPoints(), date))
	return gamify.DailyGoalsMet(waterML, profile.Goals.WaterGoalML, meals, fitnessMin)
}

func (t *Tracker) snapshot(profile model.UserProfile) gamify.Snapshot {
	today := t.store.Today()
	waterToday := int(sumPoints(t.waterPoints(), today))
	mealsToday := countPoints(t.caloriePoints(), today)
	fitnessToday := int(sumPoints(t.fitnessPoints(), today))

	habitMet := false
	for _, h := range t.store.Habits() {
		if t.store.HabitCountOn(h.ID, today) >= h.TargetCount {
			habitMet = true
			break
		}
	}

	return gamify.Snapshot{
		Streak:              profile.Streak,
		TotalPoints:         profile.TotalPoints,
		WaterTodayML:        waterToday,
		WaterGoalML:         profile.Goals.WaterGoalML,
		MealsToday:          mealsToday,
		FitnessTodayMin:     fitnessToday,
		TotalWaterLogs:      len(t.store.Water()),
		TotalFoodLogs:       len(t.store.Food()),
		TotalFitnessLogs:    len(t.store.Fitness()),
		TotalWeightLogs:     len(t.store.Weight()),
		DailyComplete:       gamify.DailyGoalsMet(waterToday, profile.Goals.WaterGoalML, mealsToday, fitnessToday),
		HabitMetTargetToday: habitMet,
	}
}
