package payment

import (
	"context"

	"github.com/sony/gobreaker/v2"
)

// BreakerGateway wraps a gateway with a circuit breaker. The simulated
// gateway never fails on its own, but the seam is where a real processor
// client would plug in, and repeated failures must stop hammering it.
type BreakerGateway struct {
	inner Gateway
	cb    *gobreaker.CircuitBreaker[*ChargeResult]
}

func NewBreakerGateway(inner Gateway) *BreakerGateway {
	settings := gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 1,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &BreakerGateway{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[*ChargeResult](settings),
	}
}

func (g *BreakerGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	return g.cb.Execute(func() (*ChargeResult, error) {
		return g.inner.Charge(ctx, req)
	})
}
