package model

import "time"

// Dates are stored as local-time "2006-01-02" strings and times of day
// as "15:04" strings, matching what the dashboard renders.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type WaterLog struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	AmountML int    `json:"amount"`
}

type FoodItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Calories    int    `json:"calories"`
	ProteinG    int    `json:"protein,omitempty"`
	CarbsG      int    `json:"carbs,omitempty"`
	FatG        int    `json:"fat,omitempty"`
	ServingSize string `json:"servingSize,omitempty"`
}

type FoodLog struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	MealType MealType `json:"mealType"`
	FoodItem FoodItem `json:"foodItem"`
}

type FitnessLog struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ActivityType   string `json:"activityType"`
	DurationMin    int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
	Notes          string `json:"notes,omitempty"`
}

type HabitColor string

const (
	HabitBlue   HabitColor = "blue"
	HabitGreen  HabitColor = "green"
	HabitOrange HabitColor = "orange"
	HabitPurple HabitColor = "purple"
	HabitRed    HabitColor = "red"
)

func (c HabitColor) Valid() bool {
	switch c {
	case HabitBlue, HabitGreen, HabitOrange, HabitPurple, HabitRed:
		return true
	}
	return false
}

type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Color       HabitColor `json:"color"`
	TargetCount int        `json:"targetCount"`
	Unit        string     `json:"unit"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// HabitLog holds a single day's count for a habit. The store keeps at
// most one record per (habitId, date); repeated logging merges counts.
type HabitLog struct {
	ID      string `json:"id"`
	HabitID string `json:"habitId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Count   int    `json:"count"`
}

type SleepLog struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Bedtime     string `json:"bedtime"`
	WakeTime    string `json:"wakeTime"`
	DurationMin int    `json:"duration"`
	Quality     int    `json:"quality"`
}

type WeightLog struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	WeightKg float64 `json:"weight"`
	Notes    string  `json:"notes,omitempty"`
}

type MacroGoals struct {
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fat"`
}

type Goals struct {
	WaterGoalML    int         `json:"waterGoal"`
	CalorieGoal    int         `json:"calorieGoal"`
	FitnessGoalMin int         `json:"fitnessGoal"`
	Macros         *MacroGoals `json:"macros,omitempty"`
}

// UserProfile is the singleton gamification record. TotalPoints only
// decreases on an explicit reset; Achievements is a monotonic set.
type UserProfile struct {
	Name          string   `json:"name"`
	Avatar        string   `json:"avatar,omitempty"`
	Goals         Goals    `json:"goals"`
	Streak        int      `json:"streak"`
	TotalPoints   int      `json:"totalPoints"`
	Achievements  []string `json:"achievements"`
	LastVisitDate string   `json:"lastVisitDate,omitempty"`
	LastBonusDate string   `json:"lastBonusDate,omitempty"`
}

func (p *UserProfile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// HealthProfile is the AI-coach input. It is passed through to the
// plan endpoint and mirrored remotely, never edited field-by-field.
type HealthProfile struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	HeightCm      float64  `json:"height"`
	WeightKg      float64  `json:"weight"`
	ActivityLevel string   `json:"activityLevel"`
	Goal          string   `json:"goal"`
	Preferences   []string `json:"dietaryPreferences,omitempty"`
}

type PlanMacros struct {
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fats"`
}

type DayMeals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

type PlanDay struct {
	Day                string   `json:"day"`
	Meals              DayMeals `json:"meals"`
	ExerciseSuggestion string   `json:"exerciseSuggestion"`
	WaterGoalML        int      `json:"waterGoal"`
}

// HealthPlan is the AI-coach output, replaced wholesale on each
// successful generation.
type HealthPlan struct {
	DailyCalories   int        `json:"dailyCalories"`
	BMR             int        `json:"bmr"`
	TDEE            int        `json:"tdee"`
	Macros          PlanMacros `json:"macros"`
	WeeklyPlan      []PlanDay  `json:"weeklyPlan"`
	Recommendations []string   `json:"recommendations"`
}
