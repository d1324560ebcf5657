package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/failsafe-go/failsafe-go/ratelimiter"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/failsafe-go/failsafe-go/timeout"
	"shopstack.io/product-catalog/app/domain/common"
	"shopstack.io/product-catalog/app/utils/logger"
)

// Config holds the policy settings for one guarded dependency.
type Config struct {
	// Rate limiting: at most RateLimit executions per RatePeriod,
	// rejected immediately when exceeded.
	RateLimit  uint
	RatePeriod time.Duration

	// Retry: MaxRetries re-attempts with exponential backoff between
	// RetryDelay and RetryMaxDelay.
	MaxRetries    int
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration

	// Circuit breaking: open after FailureThreshold failures out of the
	// last ThresholdCapacity executions, stay open for OpenCooldown, then
	// close again after HalfOpenSuccesses successful probes.
	FailureThreshold  uint
	ThresholdCapacity uint
	OpenCooldown      time.Duration
	HalfOpenSuccesses uint

	// Per-attempt timeout, enforced independently of the retry policy.
	CallTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		RateLimit:         50,
		RatePeriod:        time.Second,
		MaxRetries:        2,
		RetryDelay:        200 * time.Millisecond,
		RetryMaxDelay:     2 * time.Second,
		FailureThreshold:  5,
		ThresholdCapacity: 10,
		OpenCooldown:      10 * time.Second,
		HalfOpenSuccesses: 2,
		CallTimeout:       2 * time.Second,
	}
}

// Guard wraps outbound calls to one named dependency with the policy
// chain rate limiter -> retry -> circuit breaker -> per-attempt timeout.
// Breaker and limiter state is shared by every caller of the same Guard,
// so failures seen by one caller short-circuit all of them.
type Guard[T any] struct {
	name     string
	executor failsafe.Executor[T]
	breaker  circuitbreaker.CircuitBreaker[T]
}

// NewGuard builds the policy chain for a dependency. The policy order is
// outermost first: a rate-limited call is rejected before any attempt, each
// retry attempt consults the breaker, and the timeout bounds one attempt.
func NewGuard[T any](name string, cfg Config) *Guard[T] {
	handleIf := func(_ T, err error) bool {
		if err == nil {
			return false
		}
		// Definitive remote answers are not transient.
		switch common.KindOf(err) {
		case common.KindNotFound, common.KindValidation:
			return false
		}
		return true
	}

	limiter := ratelimiter.BurstyBuilder[T](cfg.RateLimit, cfg.RatePeriod).Build()

	retry := retrypolicy.Builder[T]().
		HandleIf(handleIf).
		WithMaxRetries(cfg.MaxRetries).
		WithBackoff(cfg.RetryDelay, cfg.RetryMaxDelay).
		OnRetry(func(e failsafe.ExecutionEvent[T]) {
			logger.GetLogger().WithField("dependency", name).
				Warnf("retrying call, attempt %d: %v", e.Attempts(), e.LastError())
		}).
		Build()

	breaker := circuitbreaker.Builder[T]().
		HandleIf(handleIf).
		WithFailureThresholdRatio(cfg.FailureThreshold, cfg.ThresholdCapacity).
		WithDelay(cfg.OpenCooldown).
		WithSuccessThreshold(cfg.HalfOpenSuccesses).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			logger.GetLogger().WithField("dependency", name).
				Warnf("circuit breaker %s -> %s", e.OldState, e.NewState)
		}).
		Build()

	callTimeout := timeout.With[T](cfg.CallTimeout)

	return &Guard[T]{
		name:     name,
		executor: failsafe.NewExecutor[T](limiter, retry, breaker, callTimeout),
		breaker:  breaker,
	}
}

// State reports the current circuit state of the guarded dependency.
func (g *Guard[T]) State() circuitbreaker.State {
	return g.breaker.State()
}

// Do runs fn through the policy chain. Exhaustion of any policy is
// reported as a dependency-unavailable error; not-found and validation
// answers from the remote side pass through untouched.
func (g *Guard[T]) Do(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	result, err := g.executor.WithContext(ctx).GetWithExecution(func(exec failsafe.Execution[T]) (T, error) {
		return fn(exec.Context())
	})
	if err == nil {
		return result, nil
	}

	switch common.KindOf(err) {
	case common.KindNotFound, common.KindValidation:
		return result, err
	}

	switch {
	case errors.Is(err, ratelimiter.ErrExceeded):
		return result, common.WrapError(common.KindDependencyUnavailable, "c41a48a9-2c5a-44cf-9f29-1e0cfb0a2f1d", g.name+" call rate exceeded", err)
	case errors.Is(err, circuitbreaker.ErrOpen):
		return result, common.WrapError(common.KindDependencyUnavailable, "6f1f3e86-4b1c-4cb3-9cc5-22e2cdd2f4aa", g.name+" circuit is open", err)
	case errors.Is(err, timeout.ErrExceeded):
		return result, common.WrapError(common.KindDependencyUnavailable, "8f0a97a9-06ad-40a7-8f0f-6f5bb4a4f6ce", g.name+" call timed out", err)
	default:
		return result, common.WrapError(common.KindDependencyUnavailable, "e64a3c9d-9a0f-49d2-bb54-08f21a6cfe40", g.name+" unavailable after retries", err)
	}
}
