package domain

import "time"

type PaymentMethod string

const (
	// MethodUnselected is the zero value: the payment screen is open but no
	// method has been chosen yet.
	MethodUnselected   PaymentMethod = ""
	MethodCash         PaymentMethod = "CASH"
	MethodCard         PaymentMethod = "CARD"
	MethodDigitalQR    PaymentMethod = "DIGITAL_QR"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodDigitalQR, MethodBankTransfer:
		return true
	}
	return false
}

// PaymentAttempt is the transient record of method and amount while the
// payment screen is active. OrderTotal is frozen at checkout time; cart edits
// are rejected until the attempt completes or is cancelled.
type PaymentAttempt struct {
	Method         PaymentMethod `json:"method"`
	AmountTendered float64       `json:"amount_tendered"`
	OrderTotal     float64       `json:"order_total"`
	Snapshot       CartSnapshot  `json:"snapshot"`
	StartedAt      time.Time     `json:"started_at"`
}

// Change is the cash to hand back, clamped to zero for display. Non-cash
// methods never produce change.
func (a *PaymentAttempt) Change() float64 {
	if a.Method != MethodCash {
		return 0
	}
	change := a.AmountTendered - a.OrderTotal
	if change < 0 {
		return 0
	}
	return change
}

// Insufficient reports whether a cash amount has been entered that does not
// cover the order total.
func (a *PaymentAttempt) Insufficient() bool {
	return a.Method == MethodCash && a.AmountTendered > 0 && a.AmountTendered < a.OrderTotal
}

// Confirmable is the hard guard for the confirm action: a method must be
// selected, and cash payments must tender at least the order total.
func (a *PaymentAttempt) Confirmable() bool {
	if !a.Method.Valid() {
		return false
	}
	if a.Method == MethodCash {
		return a.AmountTendered >= a.OrderTotal
	}
	return true
}

// Receipt is recorded when a charge succeeds and shown on the success screen.
type Receipt struct {
	TransactionID string        `json:"transaction_id"`
	Method        PaymentMethod `json:"method"`
	Total         float64       `json:"total"`
	Tendered      float64       `json:"tendered,omitempty"`
	Change        float64       `json:"change,omitempty"`
	CompletedAt   time.Time     `json:"completed_at"`
}
