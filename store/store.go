package store

import (
	"errors"
	"net"
	"syscall"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a user id does not resolve to the requested
// role's specialization row.
var ErrNotFound = errors.New("record not found")

// Store is the single data-access module: one named operation with a typed
// result shape per dashboard need.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

const (
	retryAttempts = 3
	retryBackoff  = 100 * time.Millisecond
)

// withRetry re-runs a read on transient connection failures only. Validation
// and not-found outcomes are never retried.
func (s *Store) withRetry(op func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * retryBackoff)
		}
		err = op()
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return err
}

func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}
