// Package service implements the order session state machine: login creates a
// session on the cashier screen, checkout freezes the cart behind a payment
// attempt, and completing or cancelling the attempt returns to the cashier.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/abarrotes/pos/internal/auth"
	"github.com/abarrotes/pos/internal/catalog"
	"github.com/abarrotes/pos/internal/domain"
	"github.com/abarrotes/pos/internal/payment"
	"github.com/abarrotes/pos/internal/store"
)

// Currency of the demo store.
const Currency = "MXN"

type OrderService struct {
	sessions *store.SessionStore
	catalog  *catalog.Catalog
	auth     *auth.Authenticator
	tokens   *auth.TokenIssuer
	gateway  payment.Gateway

	// successDisplay is how long the success screen stays up before the
	// session automatically returns to the cashier with a fresh cart.
	successDisplay time.Duration
}

func NewOrderService(
	sessions *store.SessionStore,
	cat *catalog.Catalog,
	authenticator *auth.Authenticator,
	tokens *auth.TokenIssuer,
	gateway payment.Gateway,
	successDisplay time.Duration,
) *OrderService {
	return &OrderService{
		sessions:       sessions,
		catalog:        cat,
		auth:           authenticator,
		tokens:         tokens,
		gateway:        gateway,
		successDisplay: successDisplay,
	}
}

// Login verifies credentials and creates a session on the cashier screen with
// an empty cart. The returned token carries the session ID.
func (s *OrderService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	op, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	sess := &domain.Session{
		ID:         uuid.New().String(),
		Operator:   op,
		State:      domain.StateCashier,
		CreatedAt:  now,
		LastActive: now,
	}
	s.sessions.Put(sess)

	token, err := s.tokens.Issue(sess.ID, op)
	if err != nil {
		// roll the session back, a session without a token is unreachable
		_ = s.sessions.Delete(sess.ID)
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}
	return token, sess.Clone(), nil
}

// Logout destroys the session together with its cart, payment attempt and any
// pending timer.
func (s *OrderService) Logout(sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// Session returns the current view of a session.
func (s *OrderService) Session(sessionID string) (*domain.Session, error) {
	return s.sessions.Get(sessionID)
}

// AddItem puts one unit of the product into the cart, incrementing the line
// if it already exists. Name and price are copied from the catalog now.
func (s *OrderService) AddItem(sessionID, productID string) (*domain.Session, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return nil, err
	}
	err = s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.State != domain.StateCashier {
			return ErrCartLocked
		}
		sess.Cart.Add(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// RemoveItem decrements the line, deleting it at quantity one.
func (s *OrderService) RemoveItem(sessionID, productID string) (*domain.Session, error) {
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.State != domain.StateCashier {
			return ErrCartLocked
		}
		if !sess.Cart.Remove(productID) {
			return ErrLineNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

func (s *OrderService) ClearCart(sessionID string) (*domain.Session, error) {
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.State != domain.StateCashier {
			return ErrCartLocked
		}
		sess.Cart.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// Checkout snapshots the cart totals and moves to the payment screen. From
// here on the cart is read-only until the attempt is resolved.
func (s *OrderService) Checkout(sessionID string) (*domain.Session, error) {
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.State != domain.StateCashier {
			return ErrCartLocked
		}
		if sess.Cart.IsEmpty() {
			return ErrEmptyCart
		}
		snapshot := sess.Cart.Snapshot(Currency)
		sess.Attempt = &domain.PaymentAttempt{
			OrderTotal: snapshot.TotalAmount,
			Snapshot:   snapshot,
			StartedAt:  time.Now(),
		}
		sess.Receipt = nil
		sess.State = domain.StatePayment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// SelectMethod picks the payment method. Switching away from cash discards
// the tendered amount.
func (s *OrderService) SelectMethod(sessionID string, method domain.PaymentMethod) (*domain.Session, error) {
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		switch sess.State {
		case domain.StatePayment:
		case domain.StateProcessing:
			return ErrPaymentInProgress
		default:
			return ErrNotInPayment
		}
		if sess.Attempt.Method == domain.MethodCash && method != domain.MethodCash {
			sess.Attempt.AmountTendered = 0
		}
		sess.Attempt.Method = method
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// EnterCash records the amount the customer handed over. Only meaningful for
// the cash method; change and confirmability derive from it.
func (s *OrderService) EnterCash(sessionID string, amount float64) (*domain.Session, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		switch sess.State {
		case domain.StatePayment:
		case domain.StateProcessing:
			return ErrPaymentInProgress
		default:
			return ErrNotInPayment
		}
		if sess.Attempt.Method != domain.MethodCash {
			return ErrCashOnly
		}
		sess.Attempt.AmountTendered = amount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// Confirm charges the attempt through the gateway. The session sits in
// PROCESSING while the charge runs; on success it shows the success screen
// and schedules the automatic return to the cashier.
func (s *OrderService) Confirm(ctx context.Context, sessionID string) (*domain.Session, error) {
	var attempt domain.PaymentAttempt
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		switch sess.State {
		case domain.StatePayment:
		case domain.StateProcessing:
			return ErrPaymentInProgress
		default:
			return ErrNotInPayment
		}
		if !sess.Attempt.Confirmable() {
			return ErrNotConfirmable
		}
		attempt = *sess.Attempt
		sess.State = domain.StateProcessing
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.Charge(ctx, payment.ChargeRequest{
		SessionID: sessionID,
		Method:    attempt.Method,
		Amount:    attempt.OrderTotal,
		Currency:  attempt.Snapshot.Currency,
	})
	if err != nil {
		// back to the payment screen, attempt untouched; the session may
		// also be gone if the operator logged out mid-charge
		if rbErr := s.sessions.Update(sessionID, func(sess *domain.Session) error {
			if sess.State == domain.StateProcessing {
				sess.State = domain.StatePayment
			}
			return nil
		}); rbErr != nil {
			return nil, rbErr
		}
		return nil, fmt.Errorf("charge failed: %w", err)
	}

	err = s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.State != domain.StateProcessing {
			// session was logged out and recreated, or otherwise moved on;
			// drop the stale result
			return nil
		}
		sess.Receipt = &domain.Receipt{
			TransactionID: result.TransactionID,
			Method:        sess.Attempt.Method,
			Total:         sess.Attempt.OrderTotal,
			Tendered:      sess.Attempt.AmountTendered,
			Change:        sess.Attempt.Change(),
			CompletedAt:   result.ProcessedAt,
		}
		sess.State = domain.StatePaymentSuccess
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Schedule(sessionID, s.successDisplay, func() {
		s.finishSuccess(sessionID)
	}); err != nil {
		return nil, err
	}

	return s.sessions.Get(sessionID)
}

// finishSuccess runs when the success display delay elapses: the cart is
// cleared and the session returns to the cashier for the next customer.
func (s *OrderService) finishSuccess(sessionID string) {
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.State != domain.StatePaymentSuccess {
			return nil
		}
		sess.Cart.Clear()
		sess.Attempt = nil
		sess.State = domain.StateCashier
		return nil
	})
	if err != nil {
		log.Printf("finish payment for session %s: %v", sessionID, err)
	}
}

// CancelPayment discards the attempt and returns to the cashier with the cart
// exactly as it was before checkout.
func (s *OrderService) CancelPayment(sessionID string) (*domain.Session, error) {
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		switch sess.State {
		case domain.StatePayment:
		case domain.StateProcessing:
			return ErrPaymentInProgress
		default:
			return ErrNotInPayment
		}
		sess.Attempt = nil
		sess.State = domain.StateCashier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// OpenReport moves an admin session onto the report screen. Re-opening while
// already there is a no-op.
func (s *OrderService) OpenReport(sessionID string) (*domain.Session, error) {
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.Operator.Role != domain.RoleAdmin {
			return ErrForbidden
		}
		switch sess.State {
		case domain.StateAdminReport:
			return nil
		case domain.StateCashier:
			sess.State = domain.StateAdminReport
			return nil
		default:
			return ErrPaymentInProgress
		}
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}

// CloseReport returns from the report screen to the cashier.
func (s *OrderService) CloseReport(sessionID string) (*domain.Session, error) {
	err := s.sessions.Update(sessionID, func(sess *domain.Session) error {
		if sess.State != domain.StateAdminReport {
			return ErrNotInReport
		}
		sess.State = domain.StateCashier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.Get(sessionID)
}
