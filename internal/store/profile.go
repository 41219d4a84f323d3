package store

import "github.com/sk21munashe/vitality-daily-sub000/internal/model"

func (s *Store) Profile() model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.profile)
}

func (s *Store) SaveProfile(p model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	s.profile = cloneProfile(p)
	s.persist(keyProfile, s.profile)
}

func (s *Store) HealthProfile() *model.HealthProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.health == nil {
		return nil
	}
	h := *s.health
	return &h
}

func (s *Store) SaveHealthProfile(h model.HealthProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = &h
	s.persist(keyHealthProfile, s.health)
}

func (s *Store) Plan() *model.HealthPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan == nil {
		return nil
	}
	p := *s.plan
	return &p
}

func (s *Store) SavePlan(p model.HealthPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = &p
	s.persist(keyHealthPlan, s.plan)
}

// ResetAll is the bulk reset: every collection is emptied and the
// profile returns to its seed. This is the one path on which total
// points decrease.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.water = nil
	s.food = nil
	s.fitness = nil
	s.habits = nil
	s.habitLogs = nil
	s.sleep = nil
	s.weight = nil
	s.health = nil
	s.plan = nil
	s.profile = DefaultProfile()
	s.rebuildHabitIndex()

	s.persist(keyWaterLogs, s.water)
	s.persist(keyFoodLogs, s.food)
	s.persist(keyFitnessLogs, s.fitness)
	s.persist(keyHabits, s.habits)
	s.persist(keyHabitLogs, s.habitLogs)
	s.persist(keySleepLogs, s.sleep)
	s.persist(keyWeightLogs, s.weight)
	s.persist(keyProfile, s.profile)
	s.deleteKey(keyHealthProfile)
	s.deleteKey(keyHealthPlan)
}

func cloneProfile(p model.UserProfile) model.UserProfile {
	out := p
	out.Achievements = append([]string{}, p.Achievements...)
	if p.Goals.Macros != nil {
		m := *p.Goals.Macros
		out.Goals.Macros = &m
	}
	return out
}
