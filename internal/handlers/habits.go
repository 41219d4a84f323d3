package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/store"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

type HabitsHandler struct {
	tracker *tracker.Tracker
}

func NewHabitsHandler(t *tracker.Tracker) *HabitsHandler {
	return &HabitsHandler{tracker: t}
}

func (h *HabitsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string           `json:"name"`
		Icon        string           `json:"icon"`
		Color       model.HabitColor `json:"color"`
		TargetCount int              `json:"targetCount"`
		Unit        string           `json:"unit"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	habit, err := h.tracker.CreateHabit(body.Name, body.Icon, body.Color, body.TargetCount, body.Unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, habit)
}

func (h *HabitsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Store().Habits())
}

func (h *HabitsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.DeleteHabit(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HabitsHandler) Log(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Count int `json:"count"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	record, result, err := h.tracker.LogHabit(chi.URLParam(r, "id"), body.Count)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, logResponse{Record: record, Result: result})
}

func (h *HabitsHandler) Logs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Store().HabitLogs())
}
