package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentAttempt_CashChange(t *testing.T) {
	attempt := &PaymentAttempt{
		Method:         MethodCash,
		OrderTotal:     78.00,
		AmountTendered: 100.00,
	}

	assert.Equal(t, 22.00, attempt.Change())
	assert.True(t, attempt.Confirmable())
	assert.False(t, attempt.Insufficient())
}

func TestPaymentAttempt_CashInsufficient(t *testing.T) {
	attempt := &PaymentAttempt{
		Method:         MethodCash,
		OrderTotal:     78.00,
		AmountTendered: 50.00,
	}

	assert.Equal(t, 0.0, attempt.Change(), "change is clamped to zero for display")
	assert.False(t, attempt.Confirmable())
	assert.True(t, attempt.Insufficient())
}

func TestPaymentAttempt_CashExactAmount(t *testing.T) {
	attempt := &PaymentAttempt{
		Method:         MethodCash,
		OrderTotal:     78.00,
		AmountTendered: 78.00,
	}

	assert.Equal(t, 0.0, attempt.Change())
	assert.True(t, attempt.Confirmable())
	assert.False(t, attempt.Insufficient())
}

func TestPaymentAttempt_CashNoAmountEntered(t *testing.T) {
	attempt := &PaymentAttempt{
		Method:     MethodCash,
		OrderTotal: 78.00,
	}

	assert.False(t, attempt.Confirmable())
	// no amount entered yet is not the same as an insufficient amount
	assert.False(t, attempt.Insufficient())
}

func TestPaymentAttempt_UnselectedNotConfirmable(t *testing.T) {
	attempt := &PaymentAttempt{OrderTotal: 78.00}

	assert.Equal(t, MethodUnselected, attempt.Method)
	assert.False(t, attempt.Confirmable())
}

func TestPaymentAttempt_NonCashMethods(t *testing.T) {
	for _, method := range []PaymentMethod{MethodCard, MethodDigitalQR, MethodBankTransfer} {
		attempt := &PaymentAttempt{
			Method:     method,
			OrderTotal: 78.00,
		}

		// amount fields are irrelevant for non-cash methods
		assert.True(t, attempt.Confirmable(), "method %s", method)
		assert.Equal(t, 0.0, attempt.Change(), "method %s", method)
		assert.False(t, attempt.Insufficient(), "method %s", method)
	}
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.False(t, MethodUnselected.Valid())
	assert.False(t, PaymentMethod("BITCOIN").Valid())
	assert.True(t, MethodCash.Valid())
	assert.True(t, MethodCard.Valid())
}
