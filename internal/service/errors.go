package service

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrCartLocked        = errors.New("cart can only be modified on the cashier screen")
	ErrLineNotFound      = errors.New("product is not in the cart")
	ErrNotInPayment      = errors.New("no payment in progress")
	ErrCashOnly          = errors.New("tendered amount applies to cash payments only")
	ErrInvalidMethod     = errors.New("unknown payment method")
	ErrInvalidAmount     = errors.New("tendered amount must not be negative")
	ErrNotConfirmable    = errors.New("payment is not confirmable yet")
	ErrPaymentInProgress = errors.New("payment is already being processed")
	ErrForbidden         = errors.New("admin role required")
	ErrNotInReport       = errors.New("admin report is not open")
)
