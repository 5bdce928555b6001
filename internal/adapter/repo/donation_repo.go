package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"donationsvc/internal/domain"
	"donationsvc/internal/infra"
	"donationsvc/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository over PostgreSQL.
// All donor-supplied text is bound as query parameters. Amounts travel to and
// from the database as their canonical decimal strings.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Save inserts a donation row and scans the storage-assigned id back into the
// entity. A caller-set ID is ignored; the column is bigserial.
func (r *DonationRepositoryPG) Save(ctx context.Context, donation *domain.Donation) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.DonorName, donation.Amount.String(), donation.CreatedAt)
	if err := row.Scan(&donation.ID); err != nil {
		return &domain.StorageError{Op: "save donation", Err: err}
	}
	return nil
}

// CountAll returns the total number of donation rows, zero for an empty table.
func (r *DonationRepositoryPG) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountDonations).Scan(&count); err != nil {
		return 0, &domain.StorageError{Op: "count donations", Err: err}
	}
	return count, nil
}

// SumAmounts returns the total of all amounts. The statement coalesces the
// empty-set sum to zero so an empty table never yields NULL.
func (r *DonationRepositoryPG) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	var totalStr string
	if err := r.sql.QueryRow(ctx, sqlinline.QSumDonationAmounts).Scan(&totalStr); err != nil {
		return decimal.Decimal{}, &domain.StorageError{Op: "sum donation amounts", Err: err}
	}
	total, err := decimal.NewFromString(totalStr)
	if err != nil {
		return decimal.Decimal{}, &domain.StorageError{Op: "sum donation amounts", Err: fmt.Errorf("parse total: %w", err)}
	}
	return total, nil
}

// FindByDonor returns all donations for an exact donor name, oldest first.
// A donor with no rows yields an empty slice, not an error.
func (r *DonationRepositoryPG) FindByDonor(ctx context.Context, donorName string) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QDonationsByDonor, donorName)
	if err != nil {
		return nil, &domain.StorageError{Op: "find donations by donor", Err: err}
	}
	defer rows.Close()

	items := make([]domain.Donation, 0)
	for rows.Next() {
		var (
			donation  domain.Donation
			amountStr string
			createdAt time.Time
		)
		if err := rows.Scan(&donation.ID, &donation.DonorName, &amountStr, &createdAt); err != nil {
			return nil, &domain.StorageError{Op: "find donations by donor", Err: err}
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, &domain.StorageError{Op: "find donations by donor", Err: fmt.Errorf("parse amount: %w", err)}
		}
		donation.Amount = amount
		donation.CreatedAt = createdAt.UTC()
		items = append(items, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "find donations by donor", Err: err}
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
