package gamify

// Snapshot is the aggregated state the achievement rules read. The
// tracker assembles one after every relevant mutation.
type Snapshot struct {
	Streak              int
	TotalPoints         int
	WaterTodayML        int
	WaterGoalML         int
	MealsToday          int
	FitnessTodayMin     int
	TotalWaterLogs      int
	TotalFoodLogs       int
	TotalFitnessLogs    int
	TotalWeightLogs     int
	DailyComplete       bool
	HabitMetTargetToday bool
}

type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// Rule maps a predicate over aggregated state to an achievement id.
// Progress is display-only and clamped to [0, 100].
type Rule struct {
	ID       string
	Title    string
	Tier     Tier
	Test     func(Snapshot) bool
	Progress func(Snapshot) float64
}

var Rules = []Rule{
	{
		ID:       "first-water",
		Title:    "First Sip",
		Tier:     TierBronze,
		Test:     func(s Snapshot) bool { return s.TotalWaterLogs >= 1 },
		Progress: func(s Snapshot) float64 { return ratio(s.TotalWaterLogs, 1) },
	},
	{
		ID:       "first-meal",
		Title:    "Food Diary",
		Tier:     TierBronze,
		Test:     func(s Snapshot) bool { return s.TotalFoodLogs >= 1 },
		Progress: func(s Snapshot) float64 { return ratio(s.TotalFoodLogs, 1) },
	},
	{
		ID:       "first-workout",
		Title:    "Warming Up",
		Tier:     TierBronze,
		Test:     func(s Snapshot) bool { return s.TotalFitnessLogs >= 1 },
		Progress: func(s Snapshot) float64 { return ratio(s.TotalFitnessLogs, 1) },
	},
	{
		ID:       "hydration-day",
		Title:    "Well Hydrated",
		Tier:     TierBronze,
		Test:     func(s Snapshot) bool { return s.WaterGoalML > 0 && s.WaterTodayML >= s.WaterGoalML },
		Progress: func(s Snapshot) float64 { return ratio(s.WaterTodayML, s.WaterGoalML) },
	},
	{
		ID:       "balanced-day",
		Title:    "Balanced Day",
		Tier:     TierSilver,
		Test:     func(s Snapshot) bool { return s.DailyComplete },
		Progress: func(s Snapshot) float64 { return boolPct(s.DailyComplete) },
	},
	{
		ID:       "habit-builder",
		Title:    "Habit Builder",
		Tier:     TierBronze,
		Test:     func(s Snapshot) bool { return s.HabitMetTargetToday },
		Progress: func(s Snapshot) float64 { return boolPct(s.HabitMetTargetToday) },
	},
	{
		ID:       "streak-3",
		Title:    "Three In A Row",
		Tier:     TierBronze,
		Test:     func(s Snapshot) bool { return s.Streak >= 3 },
		Progress: func(s Snapshot) float64 { return ratio(s.Streak, 3) },
	},
	{
		ID:       "streak-7",
		Title:    "One Week Strong",
		Tier:     TierSilver,
		Test:     func(s Snapshot) bool { return s.Streak >= 7 },
		Progress: func(s Snapshot) float64 { return ratio(s.Streak, 7) },
	},
	{
		ID:       "streak-30",
		Title:    "Monthly Master",
		Tier:     TierGold,
		Test:     func(s Snapshot) bool { return s.Streak >= 30 },
		Progress: func(s Snapshot) float64 { return ratio(s.Streak, 30) },
	},
	{
		ID:       "points-500",
		Title:    "Point Collector",
		Tier:     TierSilver,
		Test:     func(s Snapshot) bool { return s.TotalPoints >= 500 },
		Progress: func(s Snapshot) float64 { return ratio(s.TotalPoints, 500) },
	},
	{
		ID:       "weight-tracker",
		Title:    "Scale Watcher",
		Tier:     TierSilver,
		Test:     func(s Snapshot) bool { return s.TotalWeightLogs >= 7 },
		Progress: func(s Snapshot) float64 { return ratio(s.TotalWeightLogs, 7) },
	},
}

// Evaluate returns the ids newly unlocked by the snapshot, in rule
// order. Already-unlocked ids are never re-reported or removed.
func Evaluate(unlocked []string, s Snapshot) []string {
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}
	var fresh []string
	for _, r := range Rules {
		if have[r.ID] {
			continue
		}
		if r.Test(s) {
			fresh = append(fresh, r.ID)
		}
	}
	return fresh
}

// RuleByID returns the rule for id, or nil for an unknown id.
func RuleByID(id string) *Rule {
	for i := range Rules {
		if Rules[i].ID == id {
			return &Rules[i]
		}
	}
	return nil
}

func ratio(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	pct := 100 * float64(current) / float64(target)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func boolPct(done bool) float64 {
	if done {
		return 100
	}
	return 0
}
