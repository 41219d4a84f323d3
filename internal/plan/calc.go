// Package plan computes the calorie targets behind the health plan
// and talks to the remote coach endpoint that fills in the meals.
package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
)

type Calculation struct {
	BMR           int              `json:"bmr"`
	TDEE          int              `json:"tdee"`
	DailyCalories int              `json:"dailyCalories"`
	Macros        model.PlanMacros `json:"macros"`
}

var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"athlete":   1.9,
}

// Calculate derives BMR (Mifflin-St Jeor), TDEE, and a goal-adjusted
// daily calorie target with a 30/40/30 protein/carb/fat split.
func Calculate(p model.HealthProfile) (Calculation, error) {
	if p.Age <= 0 || p.Age > 120 {
		return Calculation{}, fmt.Errorf("age must be between 1 and 120")
	}
	if p.HeightCm <= 0 {
		return Calculation{}, fmt.Errorf("height must be > 0")
	}
	if p.WeightKg <= 0 {
		return Calculation{}, fmt.Errorf("weight must be > 0")
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if strings.EqualFold(p.Gender, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(p.ActivityLevel))]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	tdee := bmr * mult

	daily := tdee
	switch strings.ToLower(strings.TrimSpace(p.Goal)) {
	case "lose", "lose_weight":
		daily = tdee - 500
	case "gain", "gain_weight", "build_muscle":
		daily = tdee + 300
	}
	if daily < 1200 {
		daily = 1200
	}

	calories := int(math.Round(daily))
	return Calculation{
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
		DailyCalories: calories,
		Macros: model.PlanMacros{
			ProteinG: int(math.Round(daily * 0.30 / 4)),
			CarbsG:   int(math.Round(daily * 0.40 / 4)),
			FatG:     int(math.Round(daily * 0.30 / 9)),
		},
	}, nil
}
