// Package payment holds the simulated payment gateway. No real processor is
// called anywhere; the gateway only waits a configurable latency and reports
// a result.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abarrotes/pos/internal/domain"
)

type ChargeRequest struct {
	SessionID string
	Method    domain.PaymentMethod
	Amount    float64
	Currency  string
}

type ChargeResult struct {
	TransactionID string
	ProcessedAt   time.Time
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// ResultSource decides the outcome of a charge. The default approves
// everything, matching the demo; tests inject their own.
type ResultSource interface {
	Result(req ChargeRequest) error
}

type AlwaysApprove struct{}

func (AlwaysApprove) Result(ChargeRequest) error { return nil }

// SimulatedGateway waits its latency and asks the result source. The wait
// respects context cancellation, so a charge abandoned mid-flight (client
// gone, session destroyed) returns instead of firing late.
type SimulatedGateway struct {
	latency time.Duration
	source  ResultSource
}

func NewSimulatedGateway(latency time.Duration, source ResultSource) *SimulatedGateway {
	if source == nil {
		source = AlwaysApprove{}
	}
	return &SimulatedGateway{latency: latency, source: source}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err := g.source.Result(req); err != nil {
		return nil, fmt.Errorf("charge refused: %w", err)
	}

	return &ChargeResult{
		TransactionID: "TXN-" + uuid.New().String(),
		ProcessedAt:   time.Now(),
	}, nil
}
