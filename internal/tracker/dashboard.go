package tracker

import (
	"fmt"
	"math"
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/aggregate"
	"github.com/sk21munashe/vitality-daily-sub000/internal/gamify"
)

// weekStart anchors "this week" windows. Monday matches the app's
// locale default.
const weekStart = time.Monday

type MetricProgress struct {
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
	Percent float64 `json:"percent"`
}

func metricProgress(current, goal float64) MetricProgress {
	return MetricProgress{Current: current, Goal: goal, Percent: aggregate.Progress(current, goal)}
}

// Dashboard is the derived state the home screen renders. It is
// recomputed from the collections on every request.
type Dashboard struct {
	Date          string         `json:"date"`
	Water         MetricProgress `json:"water"`
	Calories      MetricProgress `json:"calories"`
	Fitness       MetricProgress `json:"fitness"`
	MealsLogged   int            `json:"mealsLogged"`
	SleepHours    float64        `json:"sleepHours"`
	Streak        int            `json:"streak"`
	TotalPoints   int            `json:"totalPoints"`
	DailyComplete bool           `json:"dailyComplete"`
}

func (t *Tracker) Dashboard() Dashboard {
	profile := t.store.Profile()
	today := t.store.Today()

	water := aggregate.SumOn(t.waterPoints(), today)
	calories := aggregate.SumOn(t.caloriePoints(), today)
	fitness := aggregate.SumOn(t.fitnessPoints(), today)
	meals := aggregate.CountOn(t.caloriePoints(), today)
	sleepMin := aggregate.SumOn(t.sleepPoints(), today)

	return Dashboard{
		Date:          today,
		Water:         metricProgress(water, float64(profile.Goals.WaterGoalML)),
		Calories:      metricProgress(calories, float64(profile.Goals.CalorieGoal)),
		Fitness:       metricProgress(fitness, float64(profile.Goals.FitnessGoalMin)),
		MealsLogged:   meals,
		SleepHours:    math.Round(sleepMin/6) / 10,
		Streak:        profile.Streak,
		TotalPoints:   profile.TotalPoints,
		DailyComplete: gamify.DailyGoalsMet(int(water), profile.Goals.WaterGoalML, meals, int(fitness)),
	}
}

// ChartData returns fixed-width day buckets for a metric, ending
// today. Valid windows are the chart presets: 7, 30, and 365 days.
func (t *Tracker) ChartData(metric string, days int) ([]aggregate.Bucket, error) {
	if days != 7 && days != 30 && days != 365 {
		return nil, fmt.Errorf("unsupported chart window %d days", days)
	}
	points, err := t.metricPoints(metric)
	if err != nil {
		return nil, err
	}
	return aggregate.BucketByDay(points, days, t.store.Now()), nil
}

// MonthlyChart returns twelve per-day averages, one per month ending
// the current month.
func (t *Tracker) MonthlyChart(metric string) ([]aggregate.Bucket, error) {
	points, err := t.metricPoints(metric)
	if err != nil {
		return nil, err
	}
	return aggregate.BucketByMonth(points, 12, t.store.Now()), nil
}

// WeeklySummary aggregates the current week (Monday start) for the
// profile screen.
type WeeklySummary struct {
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	WaterML     float64 `json:"waterMl"`
	Calories    float64 `json:"calories"`
	FitnessMin  float64 `json:"fitnessMinutes"`
	Workouts    int     `json:"workouts"`
	AvgSleepHrs float64 `json:"avgSleepHours"`
	WeighIns    int     `json:"weighIns"`
	MealsLogged int     `json:"mealsLogged"`
}

func (t *Tracker) WeeklySummary() WeeklySummary {
	start, end := aggregate.WeekRange(t.store.Now(), weekStart)

	sleepDays := 0
	var sleepMin float64
	for _, p := range t.sleepPoints() {
		if p.Date >= start && p.Date <= end {
			sleepMin += p.Value
			sleepDays++
		}
	}
	avgSleep := 0.0
	if sleepDays > 0 {
		avgSleep = math.Round(sleepMin/float64(sleepDays)/6) / 10
	}

	workouts := 0
	for _, p := range t.fitnessPoints() {
		if p.Date >= start && p.Date <= end {
			workouts++
		}
	}
	meals := 0
	for _, p := range t.caloriePoints() {
		if p.Date >= start && p.Date <= end {
			meals++
		}
	}
	weighIns := 0
	for _, w := range t.store.Weight() {
		if w.Date >= start && w.Date <= end {
			weighIns++
		}
	}

	return WeeklySummary{
		StartDate:   start,
		EndDate:     end,
		WaterML:     aggregate.SumInRange(t.waterPoints(), start, end),
		Calories:    aggregate.SumInRange(t.caloriePoints(), start, end),
		FitnessMin:  aggregate.SumInRange(t.fitnessPoints(), start, end),
		Workouts:    workouts,
		AvgSleepHrs: avgSleep,
		WeighIns:    weighIns,
		MealsLogged: meals,
	}
}

// AchievementState is one row of the achievements screen.
type AchievementState struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Tier     gamify.Tier `json:"tier"`
	Unlocked bool        `json:"unlocked"`
	Progress float64     `json:"progress"`
}

func (t *Tracker) Achievements() []AchievementState {
	profile := t.store.Profile()
	snap := t.snapshot(profile)

	out := make([]AchievementState, 0, len(gamify.Rules))
	for _, r := range gamify.Rules {
		state := AchievementState{
			ID:       r.ID,
			Title:    r.Title,
			Tier:     r.Tier,
			Unlocked: profile.HasAchievement(r.ID),
			Progress: r.Progress(snap),
		}
		if state.Unlocked {
			state.Progress = 100
		}
		out = append(out, state)
	}
	return out
}

func (t *Tracker) metricPoints(metric string) ([]aggregate.Point, error) {
	switch metric {
	case "water":
		return t.waterPoints(), nil
	case "calories":
		return t.caloriePoints(), nil
	case "fitness":
		return t.fitnessPoints(), nil
	case "sleep":
		return t.sleepPoints(), nil
	case "weight":
		return t.weightPoints(), nil
	}
	return nil, fmt.Errorf("unknown metric %q", metric)
}

func (t *Tracker) waterPoints() []aggregate.Point {
	logs := t.store.Water()
	points := make([]aggregate.Point, len(logs))
	for i, l := range logs {
		points[i] = aggregate.Point{Date: l.Date, Value: float64(l.AmountML)}
	}
	return points
}

func (t *Tracker) caloriePoints() []aggregate.Point {
	logs := t.store.Food()
	points := make([]aggregate.Point, len(logs))
	for i, l := range logs {
		points[i] = aggregate.Point{Date: l.Date, Value: float64(l.FoodItem.Calories)}
	}
	return points
}

func (t *Tracker) fitnessPoints() []aggregate.Point {
	logs := t.store.Fitness()
	points := make([]aggregate.Point, len(logs))
	for i, l := range logs {
		points[i] = aggregate.Point{Date: l.Date, Value: float64(l.DurationMin)}
	}
	return points
}

func (t *Tracker) sleepPoints() []aggregate.Point {
	logs := t.store.Sleep()
	points := make([]aggregate.Point, len(logs))
	for i, l := range logs {
		points[i] = aggregate.Point{Date: l.Date, Value: float64(l.DurationMin)}
	}
	return points
}

func (t *Tracker) weightPoints() []aggregate.Point {
	logs := t.store.Weight()
	points := make([]aggregate.Point, len(logs))
	for i, l := range logs {
		points[i] = aggregate.Point{Date: l.Date, Value: l.WeightKg}
	}
	return points
}

func sumPoints(points []aggregate.Point, date string) float64 {
	return aggregate.SumOn(points, date)
}

func countPoints(points []aggregate.Point, date string) int {
	return aggregate.CountOn(points, date)
}
