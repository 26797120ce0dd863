package auth

import (
	"context"
	"time"

	"github.com/abarrotes/pos/internal/domain"
)

// Authenticator verifies credentials after a simulated latency. The wait is
// tied to the request context, so an abandoned login does not leave work
// behind.
type Authenticator struct {
	store   *CredentialStore
	latency time.Duration
}

func NewAuthenticator(store *CredentialStore, latency time.Duration) *Authenticator {
	return &Authenticator{store: store, latency: latency}
}

func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (domain.Operator, error) {
	if a.latency > 0 {
		timer := time.NewTimer(a.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.Operator{}, ctx.Err()
		case <-timer.C:
		}
	}
	return a.store.Verify(username, password)
}
