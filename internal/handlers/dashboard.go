package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

type DashboardHandler struct {
	tracker *tracker.Tracker
}

func NewDashboardHandler(t *tracker.Tracker) *DashboardHandler {
	return &DashboardHandler{tracker: t}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Dashboard())
}

func (h *DashboardHandler) Chart(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")

	if r.URL.Query().Get("window") == "year" {
		buckets, err := h.tracker.MonthlyChart(metric)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, buckets)
		return
	}

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be a number")
			return
		}
		days = parsed
	}
	buckets, err := h.tracker.ChartData(metric, days)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (h *DashboardHandler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.WeeklySummary())
}

func (h *DashboardHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Achievements())
}
