package handlers

import (
	"net/http"

	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

type ProfileHandler struct {
	tracker *tracker.Tracker
}

func NewProfileHandler(t *tracker.Tracker) *ProfileHandler {
	return &ProfileHandler{tracker: t}
}

// StartSession is called once when the app loads: it applies the
// streak transition and reports the resulting streak so the UI can
// celebrate or commiserate.
func (h *ProfileHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.StartSession(r.Context()))
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Profile())
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name   *string `json:"name"`
		Avatar *string `json:"avatar"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, http.StatusOK, h.tracker.UpdateProfile(body.Name, body.Avatar))
}

func (h *ProfileHandler) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	var patch tracker.GoalsPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	goals, err := h.tracker.UpdateGoals(patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (h *ProfileHandler) CheckDailyCompletion(w http.ResponseWriter, r *http.Request) {
	completed, result := h.tracker.CheckDailyCompletion()
	writeJSON(w, http.StatusOK, struct {
		Completed bool              `json:"completed"`
		Result    tracker.LogResult `json:"result"`
	}{Completed: completed, Result: result})
}

func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.tracker.ResetData()
	w.WriteHeader(http.StatusNoContent)
}
