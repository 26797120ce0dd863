package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarrotes/pos/internal/domain"
)

func testRequest() ChargeRequest {
	return ChargeRequest{
		SessionID: "s1",
		Method:    domain.MethodCash,
		Amount:    78.00,
		Currency:  "MXN",
	}
}

func TestSimulatedGateway_Approves(t *testing.T) {
	g := NewSimulatedGateway(0, nil)

	result, err := g.Charge(context.Background(), testRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))
	assert.False(t, result.ProcessedAt.IsZero())
}

func TestSimulatedGateway_UniqueTransactionIDs(t *testing.T) {
	g := NewSimulatedGateway(0, nil)

	first, err := g.Charge(context.Background(), testRequest())
	require.NoError(t, err)
	second, err := g.Charge(context.Background(), testRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}

type refuse struct{ err error }

func (r refuse) Result(ChargeRequest) error { return r.err }

func TestSimulatedGateway_Refusal(t *testing.T) {
	declined := errors.New("insufficient funds")
	g := NewSimulatedGateway(0, refuse{err: declined})

	_, err := g.Charge(context.Background(), testRequest())
	assert.ErrorIs(t, err, declined)
}

func TestSimulatedGateway_ContextCancelledDuringLatency(t *testing.T) {
	g := NewSimulatedGateway(time.Second, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := g.Charge(ctx, testRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestBreakerGateway_PassesThrough(t *testing.T) {
	g := NewBreakerGateway(NewSimulatedGateway(0, nil))

	result, err := g.Charge(context.Background(), testRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))
}

func TestBreakerGateway_OpensAfterConsecutiveFailures(t *testing.T) {
	declined := errors.New("processor down")
	g := NewBreakerGateway(NewSimulatedGateway(0, refuse{err: declined}))

	for i := 0; i < 5; i++ {
		_, err := g.Charge(context.Background(), testRequest())
		assert.ErrorIs(t, err, declined)
	}

	// the breaker is now open and rejects without reaching the gateway
	_, err := g.Charge(context.Background(), testRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, declined)
}

func TestQRPayload(t *testing.T) {
	png, err := QRPayload(ChargeRequest{SessionID: "session-1", Amount: 78.00, Currency: "MXN"})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
