package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// DonationRepository handles donation persistence. Implementations must bind
// donor-supplied text as query parameters, never interpolate it.
type DonationRepository interface {
	// Save inserts a donation and fills in the storage-assigned ID. Any
	// caller-set ID is ignored.
	Save(ctx context.Context, donation *Donation) error
	// CountAll returns the total number of committed donation rows.
	CountAll(ctx context.Context) (int64, error)
	// SumAmounts returns the total of all donation amounts, exactly zero
	// for an empty store.
	SumAmounts(ctx context.Context) (decimal.Decimal, error)
	// FindByDonor returns all donations matching the donor name exactly,
	// oldest first; an empty slice when there are none.
	FindByDonor(ctx context.Context, donorName string) ([]Donation, error)
}
