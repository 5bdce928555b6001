package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"donationsvc/internal/domain"
)

type donationRequest struct {
	DonorName string          `json:"donorName"`
	Amount    decimal.Decimal `json:"amount"`
}

type donationResponse struct {
	ID          int64           `json:"id"`
	DonorName   string          `json:"donorName"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedDate time.Time       `json:"createdDate"`
}

type statsResponse struct {
	TotalCount  int64           `json:"totalCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	message, err := a.Service.ProcessDonation(r.Context(), req.DonorName, req.Amount)
	switch {
	case errors.Is(err, domain.ErrEmptyDonorName), errors.Is(err, domain.ErrInvalidAmount):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	case err != nil:
		a.error(w, http.StatusInternalServerError, "internal", "failed to process donation")
		return
	}

	a.json(w, http.StatusOK, map[string]any{"success": true, "message": message})
}

func (a *App) DonationsStats(w http.ResponseWriter, r *http.Request) {
	report, err := a.Service.GetStats(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}

	var marketInfo any
	if report.MarketAvailable {
		marketInfo = report.MarketInfo
	}
	a.json(w, http.StatusOK, map[string]any{
		"stats": statsResponse{
			TotalCount:  report.Stats.TotalCount,
			TotalAmount: report.Stats.TotalAmount,
		},
		"marketInfo":      marketInfo,
		"marketAvailable": report.MarketAvailable,
	})
}

func (a *App) DonationsHistory(w http.ResponseWriter, r *http.Request) {
	donorName := chi.URLParam(r, "donorName")

	history, err := a.Service.GetDonorHistory(r.Context(), donorName)
	switch {
	case errors.Is(err, domain.ErrEmptyDonorName):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	case err != nil:
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donor history")
		return
	}

	items := make([]donationResponse, 0, len(history))
	for _, donation := range history {
		items = append(items, donationResponse{
			ID:          donation.ID,
			DonorName:   donation.DonorName,
			Amount:      donation.Amount,
			CreatedDate: donation.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) DonationsTrends(w http.ResponseWriter, r *http.Request) {
	payload, err := a.Service.GetDonationTrends(r.Context())
	if err != nil {
		a.error(w, http.StatusBadGateway, "unavailable", "donation trends unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
