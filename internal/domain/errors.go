package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDonorName = errors.New("donor name must not be empty")
	ErrInvalidAmount  = errors.New("donation amount must be greater than zero")
)

// StorageError wraps a failure from the durable store. Handlers report it
// without exposing the underlying cause to callers.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// MarketDataError wraps a failure reaching the remote market-data endpoint.
// It never fails a stats request; the report degrades instead.
type MarketDataError struct {
	Endpoint string
	Err      error
}

func (e *MarketDataError) Error() string {
	return fmt.Sprintf("market data: %s: %v", e.Endpoint, e.Err)
}

func (e *MarketDataError) Unwrap() error { return e.Err }
