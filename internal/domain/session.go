package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// Operator is an authenticated store employee. The credential hash lives in
// the auth package; this is the public identity attached to a session.
type Operator struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// SessionState is the screen the session is currently on. There is no
// LoggedOut state: a session exists if and only if the operator is past the
// login screen, so logged-out is simply the absence of a session.
type SessionState string

const (
	StateCashier        SessionState = "CASHIER"
	StatePayment        SessionState = "PAYMENT"
	StateProcessing     SessionState = "PROCESSING"
	StatePaymentSuccess SessionState = "PAYMENT_SUCCESS"
	StateAdminReport    SessionState = "ADMIN_REPORT"
)

func (s SessionState) String() string {
	return string(s)
}

// Session owns the cart and the payment flow state for one authenticated
// operator. Attempt is non-nil only between checkout and payment resolution.
type Session struct {
	ID         string          `json:"id"`
	Operator   Operator        `json:"operator"`
	State      SessionState    `json:"state"`
	Cart       Cart            `json:"cart"`
	Attempt    *PaymentAttempt `json:"attempt,omitempty"`
	Receipt    *Receipt        `json:"receipt,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	LastActive time.Time       `json:"last_active"`
}

// Clone returns a deep copy safe to hand out while the original keeps being
// mutated under the store lock.
func (s *Session) Clone() *Session {
	c := *s
	c.Cart.Items = append([]CartItem(nil), s.Cart.Items...)
	if s.Attempt != nil {
		a := *s.Attempt
		a.Snapshot.Items = append([]CartSnapshotItem(nil), s.Attempt.Snapshot.Items...)
		c.Attempt = &a
	}
	if s.Receipt != nil {
		r := *s.Receipt
		c.Receipt = &r
	}
	return &c
}
