package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/plan"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
	"github.com/sk21munashe/vitality-daily-sub000/internal/vision"
)

// PlanGenerator is what the handler needs from the AI coach client;
// tests substitute a canned implementation.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, profile model.HealthProfile) (*model.HealthPlan, error)
}

// ImageAnalyzer is the food-photo collaborator.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, imageBase64 string) (*vision.Analysis, error)
}

type PlanHandler struct {
	tracker  *tracker.Tracker
	coach    PlanGenerator
	analyzer ImageAnalyzer
}

func NewPlanHandler(t *tracker.Tracker, coach PlanGenerator, analyzer ImageAnalyzer) *PlanHandler {
	return &PlanHandler{tracker: t, coach: coach, analyzer: analyzer}
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	p := h.tracker.Plan()
	if p == nil {
		writeError(w, http.StatusNotFound, "no plan generated yet")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Calculate returns the local BMR/TDEE/macro numbers without calling
// the coach, for the onboarding preview.
func (h *PlanHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var profile model.HealthProfile
	if !decodeBody(w, r, &profile) {
		return
	}
	calc, err := plan.Calculate(profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, calc)
}

// Generate posts the health profile to the coach, stores the returned
// plan on success, and mirrors it remotely. A coach failure changes
// no local state.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h.coach == nil {
		writeError(w, http.StatusServiceUnavailable, "plan generation is not configured")
		return
	}
	var profile model.HealthProfile
	if !decodeBody(w, r, &profile) {
		return
	}
	if _, err := plan.Calculate(profile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	generated, err := h.coach.GeneratePlan(r.Context(), profile)
	if err != nil {
		if errors.Is(err, plan.ErrRateLimited) {
			writeError(w, http.StatusTooManyRequests, "plan service is rate limited, try again shortly")
			return
		}
		writeError(w, http.StatusBadGateway, "plan generation failed: "+err.Error())
		return
	}

	h.tracker.SaveHealthProfile(profile)
	h.tracker.SavePlan(*generated)
	writeJSON(w, http.StatusOK, generated)
}

// AnalyzeFood forwards a base64 photo to the vision collaborator and
// maps its error taxonomy onto distinct statuses for the UI.
func (h *PlanHandler) AnalyzeFood(w http.ResponseWriter, r *http.Request) {
	if h.analyzer == nil {
		writeError(w, http.StatusServiceUnavailable, "food image analysis is not configured")
		return
	}
	var body struct {
		Image string `json:"image"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	analysis, err := h.analyzer.AnalyzeImage(r.Context(), body.Image)
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrRateLimited):
			writeError(w, http.StatusTooManyRequests, "too many photos analyzed, wait a moment")
		case errors.Is(err, vision.ErrQuotaExceeded):
			writeError(w, http.StatusPaymentRequired, "image analysis quota exceeded")
		case errors.Is(err, vision.ErrBadImage):
			writeError(w, http.StatusBadRequest, "that photo could not be analyzed")
		default:
			writeError(w, http.StatusBadGateway, "image analysis failed: "+err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}
