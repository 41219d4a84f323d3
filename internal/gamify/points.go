package gamify

// Point credits for successful logging actions. The daily bonus is
// awarded once per calendar day when every goal is met; the tracker
// gates it with the profile's lastBonusDate marker.
const (
	PointsWater      = 10
	PointsFood       = 5
	PointsFitness    = 15
	PointsHabit      = 5
	PointsDailyBonus = 50
)

// DailyGoalsMet reports whether the day qualifies for the completion
// bonus: water goal reached, at least three meals logged, and at
// least thirty minutes of activity.
func DailyGoalsMet(waterML, waterGoalML, mealsLogged, fitnessMin int) bool {
	if waterGoalML <= 0 {
		return false
	}
	return waterML >= waterGoalML && mealsLogged >= 3 && fitnessMin >= 30
}
