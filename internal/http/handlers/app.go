package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"donationsvc/internal/domain"
)

// DonationAPI is the slice of the donation service the handlers depend on.
type DonationAPI interface {
	ProcessDonation(ctx context.Context, donorName string, amount decimal.Decimal) (string, error)
	GetStats(ctx context.Context) (domain.StatsReport, error)
	GetDonorHistory(ctx context.Context, donorName string) ([]domain.Donation, error)
	GetDonationTrends(ctx context.Context) (json.RawMessage, error)
}

// App bundles handler dependencies.
type App struct {
	Service DonationAPI
	Logger  zerolog.Logger
}

func NewApp(service DonationAPI, logger zerolog.Logger) *App {
	return &App{Service: service, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	// Encode before writing the header so a failure can still become a
	// well-formed 500 instead of a truncated 2xx.
	body, err := json.Marshal(v)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal","message":"failed to encode response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}
