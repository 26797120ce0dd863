package http

import (
	"github.com/abarrotes/pos/internal/domain"
)

// CartView is the cart as the cashier screen renders it; totals are derived
// server-side so the client never does money math.
type CartView struct {
	Items           []domain.CartItem `json:"items"`
	TotalItems      int               `json:"total_items"`
	TotalAmount     float64           `json:"total_amount"`
	CheckoutEnabled bool              `json:"checkout_enabled"`
}

type PaymentView struct {
	Method         domain.PaymentMethod      `json:"method"`
	OrderTotal     float64                   `json:"order_total"`
	AmountTendered float64                   `json:"amount_tendered"`
	Change         float64                   `json:"change"`
	Insufficient   bool                      `json:"insufficient"`
	Confirmable    bool                      `json:"confirmable"`
	Items          []domain.CartSnapshotItem `json:"items"`
	QRCode         []byte                    `json:"qr_code,omitempty"` // PNG, base64 in JSON
}

type SessionView struct {
	Operator domain.Operator     `json:"operator"`
	State    domain.SessionState `json:"state"`
	Cart     CartView            `json:"cart"`
	Payment  *PaymentView        `json:"payment,omitempty"`
	Receipt  *domain.Receipt     `json:"receipt,omitempty"`
}

func newSessionView(s *domain.Session) SessionView {
	items := s.Cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	view := SessionView{
		Operator: s.Operator,
		State:    s.State,
		Cart: CartView{
			Items:           items,
			TotalItems:      s.Cart.TotalItems(),
			TotalAmount:     s.Cart.TotalAmount(),
			CheckoutEnabled: !s.Cart.IsEmpty() && s.State == domain.StateCashier,
		},
		Receipt: s.Receipt,
	}
	if s.Attempt != nil {
		view.Payment = &PaymentView{
			Method:         s.Attempt.Method,
			OrderTotal:     s.Attempt.OrderTotal,
			AmountTendered: s.Attempt.AmountTendered,
			Change:         s.Attempt.Change(),
			Insufficient:   s.Attempt.Insufficient(),
			Confirmable:    s.Attempt.Confirmable(),
			Items:          s.Attempt.Snapshot.Items,
		}
	}
	return view
}
