// Package resilience wraps outbound calls in a gobreaker circuit breaker so a failing
// provider is short-circuited instead of adding its timeout to every request.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/pkg/metrics"

	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

const (
	DefaultMaxRequests           uint32  = 1
	DefaultInterval                      = 60 * time.Second
	DefaultOpenTimeout                   = 30 * time.Second
	DefaultFailureThreshold      uint32  = 5
	DefaultFailureRatioThreshold float64 = 0.6
	DefaultMinRequestsToTrip     uint32  = 10
)

type CircuitBreakerConfig struct {
	Name                  string
	MaxRequests           uint32        // requests allowed through while half-open
	Interval              time.Duration // closed-state window after which counts reset
	Timeout               time.Duration // open period before probing again
	FailureThreshold      uint32        // consecutive failures that trip the breaker
	FailureRatioThreshold float64
	MinRequestsToTrip     uint32
}

func DefaultCircuitBreakerConfig(name string) *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		Name:                  name,
		MaxRequests:           DefaultMaxRequests,
		Interval:              DefaultInterval,
		Timeout:               DefaultOpenTimeout,
		FailureThreshold:      DefaultFailureThreshold,
		FailureRatioThreshold: DefaultFailureRatioThreshold,
		MinRequestsToTrip:     DefaultMinRequestsToTrip,
	}
}

// CircuitBreaker wraps gobreaker with logging and a state gauge.
type CircuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	name   string
	logger *slog.Logger
}

// NewCircuitBreaker builds a breaker. m may be nil.
func NewCircuitBreaker(config *CircuitBreakerConfig, logger *slog.Logger, m *metrics.Metrics) *CircuitBreaker {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= config.FailureThreshold {
				return true
			}
			if config.MinRequestsToTrip > 0 && counts.Requests >= config.MinRequestsToTrip {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return failureRatio >= config.FailureRatioThreshold
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			m.SetCircuitBreakerState(name, int(to))
		},
	}

	m.SetCircuitBreakerState(config.Name, int(gobreaker.StateClosed))

	return &CircuitBreaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		name:   config.Name,
		logger: logger,
	}
}

// Execute runs fn through the breaker. While the breaker rejects calls the returned
// error wraps ErrCircuitOpen. Context cancellation by the caller is not counted as
// a provider failure.
func (c *CircuitBreaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	var callerErr error
	_, err := c.cb.Execute(func() (interface{}, error) {
		err := fn(ctx)
		if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil {
			callerErr = err
			return nil, nil
		}
		return nil, err
	})
	if callerErr != nil {
		return callerErr
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.WarnContext(ctx, "call rejected by circuit breaker", "name", c.name, "state", c.cb.State().String())
		return fmt.Errorf("%w: %s", ErrCircuitOpen, c.name)
	}

	return err
}

func (c *CircuitBreaker) State() gobreaker.State {
	return c.cb.State()
}

func (c *CircuitBreaker) Name() string {
	return c.name
}
