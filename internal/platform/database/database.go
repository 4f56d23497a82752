package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/lojinha/loja-microservices/internal/platform/logger"
	"go.uber.org/zap"
)

// ErrStoreNotReady is returned when a store could not be reached within the
// bounded startup connect loop. Services must treat it as fatal at startup
// instead of serving requests against a nil handle.
var ErrStoreNotReady = errors.New("store not ready: connection could not be established")

// connectWithRetry polls fn at a fixed interval until it succeeds or the
// attempt budget is exhausted. It runs to completion before the caller is
// allowed to signal readiness; there is no background reconnect.
func connectWithRetry(store string, attempts int, interval time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 1; i <= attempts; i++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		logger.Warn("store not reachable yet, retrying",
			zap.String("store", store),
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(lastErr),
		)
		if i < attempts {
			time.Sleep(interval)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreNotReady, store, lastErr)
}
