package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(frontendURL string, env string, pulseHandler PulseHandler, chatHandler ChatHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-pulse"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/workforce", func(r chi.Router) {
			r.Get("/snapshot", pulseHandler.GetSnapshot)
			r.Get("/employees", pulseHandler.ListEmployees)
			r.Get("/header", pulseHandler.GetHeader)
			r.Get("/events", pulseHandler.Events)

			r.Route("/exceptions", func(r chi.Router) {
				r.Get("/", pulseHandler.ListExceptions)
				r.Post("/{id}/dismiss", pulseHandler.Dismiss)
				r.Post("/{id}/snooze", pulseHandler.Snooze)
			})
		})

		r.Post("/chat", chatHandler.Complete)
	})

	return r
}
