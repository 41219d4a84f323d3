package store

import (
	"fmt"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
)

func (s *Store) AppendWater(amountML int) model.WaterLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, date, tod := s.stamp()
	log := model.WaterLog{ID: id, Date: date, Time: tod, AmountML: amountML}
	s.water = append(s.water, log)
	s.persist(keyWaterLogs, s.water)
	return log
}

func (s *Store) Water() []model.WaterLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WaterLog, len(s.water))
	copy(out, s.water)
	return out
}

func (s *Store) AppendFood(meal model.MealType, item model.FoodItem) model.FoodLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, date, tod := s.stamp()
	if item.ID == "" {
		item.ID = s.newID()
	}
	log := model.FoodLog{ID: id, Date: date, Time: tod, MealType: meal, FoodItem: item}
	s.food = append(s.food, log)
	s.persist(keyFoodLogs, s.food)
	return log
}

// FoodPatch carries the editable fields of a food log. Nil fields are
// left untouched.
type FoodPatch struct {
	Name     *string
	Calories *int
	ProteinG *int
	CarbsG   *int
	FatG     *int
	MealType *model.MealType
}

func (s *Store) UpdateFood(id string, patch FoodPatch) (model.FoodLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.food {
		if s.food[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.food[i].FoodItem.Name = *patch.Name
		}
		if patch.Calories != nil {
			s.food[i].FoodItem.Calories = *patch.Calories
		}
		if patch.ProteinG != nil {
			s.food[i].FoodItem.ProteinG = *patch.ProteinG
		}
		if patch.CarbsG != nil {
			s.food[i].FoodItem.CarbsG = *patch.CarbsG
		}
		if patch.FatG != nil {
			s.food[i].FoodItem.FatG = *patch.FatG
		}
		if patch.MealType != nil {
			s.food[i].MealType = *patch.MealType
		}
		s.persist(keyFoodLogs, s.food)
		return s.food[i], nil
	}
	return model.FoodLog{}, fmt.Errorf("food log %q: %w", id, ErrNotFound)
}

func (s *Store) RemoveFood(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.food {
		if s.food[i].ID == id {
			s.food = append(s.food[:i], s.food[i+1:]...)
			s.persist(keyFoodLogs, s.food)
			return nil
		}
	}
	return fmt.Errorf("food log %q: %w", id, ErrNotFound)
}

func (s *Store) Food() []model.FoodLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FoodLog, len(s.food))
	copy(out, s.food)
	return out
}

func (s *Store) AppendFitness(activityType string, durationMin, caloriesBurned int, notes string) model.FitnessLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, date, tod := s.stamp()
	log := model.FitnessLog{
		ID:             id,
		Date:           date,
		Time:           tod,
		ActivityType:   activityType,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
		Notes:          notes,
	}
	s.fitness = append(s.fitness, log)
	s.persist(keyFitnessLogs, s.fitness)
	return log
}

func (s *Store) Fitness() []model.FitnessLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FitnessLog, len(s.fitness))
	copy(out, s.fitness)
	return out
}

func (s *Store) AppendSleep(bedtime, wakeTime string, durationMin, quality int) model.SleepLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, date, _ := s.stamp()
	log := model.SleepLog{
		ID:          id,
		Date:        date,
		Bedtime:     bedtime,
		WakeTime:    wakeTime,
		DurationMin: durationMin,
		Quality:     quality,
	}
	s.sleep = append(s.sleep, log)
	s.persist(keySleepLogs, s.sleep)
	return log
}

func (s *Store) Sleep() []model.SleepLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.SleepLog, len(s.sleep))
	copy(out, s.sleep)
	return out
}

func (s *Store) AppendWeight(weightKg float64, notes string) model.WeightLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, date, tod := s.stamp()
	log := model.WeightLog{ID: id, Date: date, Time: tod, WeightKg: weightKg, Notes: notes}
	s.weight = append(s.weight, log)
	s.persist(keyWeightLogs, s.weight)
	return log
}

func (s *Store) Weight() []model.WeightLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WeightLog, len(s.weight))
	copy(out, s.weight)
	return out
}
