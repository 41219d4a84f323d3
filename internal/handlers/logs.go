package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/store"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

// LogsHandler exposes the logging actions. Every successful log
// returns the stored record plus the points/achievement result so the
// UI can react once per unlock.
type LogsHandler struct {
	tracker *tracker.Tracker
}

func NewLogsHandler(t *tracker.Tracker) *LogsHandler {
	return &LogsHandler{tracker: t}
}

type logResponse struct {
	Record any               `json:"record"`
	Result tracker.LogResult `json:"result"`
}

func (h *LogsHandler) LogWater(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AmountML int `json:"amount"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	record, result, err := h.tracker.LogWater(body.AmountML)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, logResponse{Record: record, Result: result})
}

func (h *LogsHandler) ListWater(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Store().Water())
}

func (h *LogsHandler) LogFood(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MealType model.MealType `json:"mealType"`
		FoodItem model.FoodItem `json:"foodItem"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	record, result, err := h.tracker.LogFood(body.MealType, body.FoodItem)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, logResponse{Record: record, Result: result})
}

func (h *LogsHandler) ListFood(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Store().Food())
}

func (h *LogsHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	var patch store.FoodPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	record, err := h.tracker.UpdateFoodLog(chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *LogsHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.DeleteFoodLog(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LogsHandler) LogFitness(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ActivityType   string `json:"activityType"`
		DurationMin    int    `json:"duration"`
		CaloriesBurned int    `json:"caloriesBurned"`
		Notes          string `json:"notes"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	record, result, err := h.tracker.LogFitness(body.ActivityType, body.DurationMin, body.CaloriesBurned, body.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, logResponse{Record: record, Result: result})
}

func (h *LogsHandler) ListFitness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Store().Fitness())
}

func (h *LogsHandler) LogSleep(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Bedtime  string `json:"bedtime"`
		WakeTime string `json:"wakeTime"`
		Quality  int    `json:"quality"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	record, err := h.tracker.LogSleep(body.Bedtime, body.WakeTime, body.Quality)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *LogsHandler) ListSleep(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Store().Sleep())
}

func (h *LogsHandler) LogWeight(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WeightKg float64 `json:"weight"`
		Notes    string  `json:"notes"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	record, err := h.tracker.LogWeight(body.WeightKg, body.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *LogsHandler) ListWeight(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Store().Weight())
}
