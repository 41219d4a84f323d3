// Package server wires the chi router over the tracker and the
// external collaborators.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sk21munashe/vitality-daily-sub000/internal/handlers"
	"github.com/sk21munashe/vitality-daily-sub000/internal/tracker"
)

type Server struct {
	router *chi.Mux
	port   string
}

func New(t *tracker.Tracker, coach handlers.PlanGenerator, analyzer handlers.ImageAnalyzer, port string) *Server {
	logsHandler := handlers.NewLogsHandler(t)
	habitsHandler := handlers.NewHabitsHandler(t)
	dashboardHandler := handlers.NewDashboardHandler(t)
	profileHandler := handlers.NewProfileHandler(t)
	planHandler := handlers.NewPlanHandler(t, coach, analyzer)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/session", profileHandler.StartSession)

		r.Get("/profile", profileHandler.Profile)
		r.Patch("/profile", profileHandler.UpdateProfile)
		r.Patch("/goals", profileHandler.UpdateGoals)
		r.Post("/daily-check", profileHandler.CheckDailyCompletion)
		r.Post("/reset", profileHandler.Reset)

		r.Get("/dashboard", dashboardHandler.Dashboard)
		r.Get("/charts/{metric}", dashboardHandler.Chart)
		r.Get("/weekly-summary", dashboardHandler.WeeklySummary)
		r.Get("/achievements", dashboardHandler.Achievements)

		r.Get("/water", logsHandler.ListWater)
		r.Post("/water", logsHandler.LogWater)

		r.Get("/food", logsHandler.ListFood)
		r.Post("/food", logsHandler.LogFood)
		r.Patch("/food/{id}", logsHandler.UpdateFood)
		r.Delete("/food/{id}", logsHandler.DeleteFood)

		r.Get("/fitness", logsHandler.ListFitness)
		r.Post("/fitness", logsHandler.LogFitness)

		r.Get("/sleep", logsHandler.ListSleep)
		r.Post("/sleep", logsHandler.LogSleep)

		r.Get("/weight", logsHandler.ListWeight)
		r.Post("/weight", logsHandler.LogWeight)

		r.Get("/habits", habitsHandler.List)
		r.Post("/habits", habitsHandler.Create)
		r.Delete("/habits/{id}", habitsHandler.Delete)
		r.Get("/habits/logs", habitsHandler.Logs)
		r.Post("/habits/{id}/log", habitsHandler.Log)

		r.Get("/plan", planHandler.Plan)
		r.Post("/plan/calculate", planHandler.Calculate)
		r.Post("/plan/generate", planHandler.Generate)
		r.Post("/vision/analyze", planHandler.AnalyzeFood)
	})

	return &Server{router: router, port: port}
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	address := ":" + s.port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, s.router)
}
