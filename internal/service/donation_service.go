package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"donationsvc/internal/domain"
)

// MarketDataClient fetches remote enrichment payloads. It is treated as an
// opaque, possibly slow or failing dependency.
type MarketDataClient interface {
	FetchMarketData(ctx context.Context) (json.RawMessage, error)
	FetchDonationTrends(ctx context.Context) (json.RawMessage, error)
}

// DonationService owns the donation domain logic: input validation, canonical
// UTC timestamps, aggregate queries, and the concurrent merge of local stats
// with the remote market payload.
type DonationService struct {
	repo   domain.DonationRepository
	market MarketDataClient
	logger zerolog.Logger
}

// NewDonationService wires the service with its collaborators.
func NewDonationService(repo domain.DonationRepository, market MarketDataClient, logger zerolog.Logger) *DonationService {
	return &DonationService{
		repo:   repo,
		market: market,
		logger: logger.With().Str("component", "donation_service").Logger(),
	}
}

// ProcessDonation validates the input, stamps the current UTC time, and
// persists the donation. The donor name is stored exactly as supplied.
func (s *DonationService) ProcessDonation(ctx context.Context, donorName string, amount decimal.Decimal) (string, error) {
	if strings.TrimSpace(donorName) == "" {
		return "", domain.ErrEmptyDonorName
	}
	if amount.Sign() <= 0 {
		return "", domain.ErrInvalidAmount
	}

	donation := &domain.Donation{
		DonorName: donorName,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, donation); err != nil {
		s.logger.Error().Err(err).Msg("failed to save donation")
		return "", err
	}

	s.logger.Info().
		Int64("donation_id", donation.ID).
		Str("amount", amount.String()).
		Msg("donation recorded")

	return fmt.Sprintf("Donation of %s from %s processed successfully", amount.StringFixed(2), donorName), nil
}

// GetStats computes the local aggregate and fetches the market payload
// concurrently, then merges both into one report. A market failure degrades
// the report instead of failing the request; a storage failure fails it.
func (s *DonationService) GetStats(ctx context.Context) (domain.StatsReport, error) {
	type marketResult struct {
		payload json.RawMessage
		err     error
	}

	// Buffered so the fetch goroutine never blocks, even when the local
	// aggregate fails and the result is discarded.
	marketCh := make(chan marketResult, 1)
	go func() {
		payload, err := s.market.FetchMarketData(ctx)
		marketCh <- marketResult{payload: payload, err: err}
	}()

	stats, err := s.localStats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute donation stats")
		return domain.StatsReport{}, err
	}

	report := domain.StatsReport{Stats: stats}
	if res := <-marketCh; res.err != nil {
		s.logger.Warn().Err(res.err).Msg("market data unavailable, returning stats without enrichment")
	} else {
		report.MarketInfo = res.payload
		report.MarketAvailable = true
	}
	return report, nil
}

// GetDonorHistory returns all donations for a donor in the order the gateway
// yields them. An unknown donor yields an empty slice.
func (s *DonationService) GetDonorHistory(ctx context.Context, donorName string) ([]domain.Donation, error) {
	if strings.TrimSpace(donorName) == "" {
		return nil, domain.ErrEmptyDonorName
	}
	return s.repo.FindByDonor(ctx, donorName)
}

// GetDonationTrends passes the remote trends payload through unchanged.
func (s *DonationService) GetDonationTrends(ctx context.Context) (json.RawMessage, error) {
	return s.market.FetchDonationTrends(ctx)
}

// localStats issues the count and sum queries concurrently; each runs on its
// own pooled connection.
func (s *DonationService) localStats(ctx context.Context) (domain.DonationStats, error) {
	var (
		wg       sync.WaitGroup
		count    int64
		total    decimal.Decimal
		countErr error
		sumErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		count, countErr = s.repo.CountAll(ctx)
	}()
	go func() {
		defer wg.Done()
		total, sumErr = s.repo.SumAmounts(ctx)
	}()
	wg.Wait()

	if countErr != nil {
		return domain.DonationStats{}, countErr
	}
	if sumErr != nil {
		return domain.DonationStats{}, sumErr
	}
	return domain.DonationStats{TotalCount: count, TotalAmount: total}, nil
}
