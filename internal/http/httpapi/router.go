package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"donationsvc/internal/http/handlers"
	"donationsvc/internal/middleware"
)

func NewRouter(app *handlers.App, logger zerolog.Logger, allowedOrigins []string) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(middleware.Logger(logger))

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/donations", func(r chi.Router) {
		r.Post("/", app.DonationsCreate)
		r.Get("/stats", app.DonationsStats)
		r.Get("/trends", app.DonationsTrends)
		r.Get("/{donorName}/history", app.DonationsHistory)
	})

	return r
}
