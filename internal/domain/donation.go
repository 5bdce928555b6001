package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Donation represents a single donor contribution record.
// ID is assigned by storage on insert and is zero before persistence.
// CreatedAt is always assigned by the service in UTC; caller-supplied
// timestamps are never trusted.
type Donation struct {
	ID        int64
	DonorName string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// DonationStats is a derived view over all committed donation rows. It is
// recomputed on every query and never cached.
type DonationStats struct {
	TotalCount  int64
	TotalAmount decimal.Decimal
}

// StatsReport combines the local aggregate with the remote market payload.
// MarketInfo is opaque pass-through data; when the remote fetch fails it is
// nil and MarketAvailable is false, while Stats stays populated.
type StatsReport struct {
	Stats           DonationStats
	MarketInfo      json.RawMessage
	MarketAvailable bool
}
