// Package auth owns the fixed credential table and the session tokens. The
// demo operators are seeded with plaintext passwords and hashed at startup;
// this is a demo convenience, not a user management system.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/abarrotes/pos/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type credentialRecord struct {
	operator     domain.Operator
	passwordHash []byte
}

// CredentialStore is a fixed lookup table queried by exact username match.
type CredentialStore struct {
	records map[string]credentialRecord
}

// SeedOperator is one entry of the demo credential table.
type SeedOperator struct {
	Username    string
	Password    string
	DisplayName string
	Role        domain.Role
}

func NewCredentialStore(seeds []SeedOperator) (*CredentialStore, error) {
	records := make(map[string]credentialRecord, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", s.Username, err)
		}
		records[s.Username] = credentialRecord{
			operator: domain.Operator{
				Username:    s.Username,
				DisplayName: s.DisplayName,
				Role:        s.Role,
			},
			passwordHash: hash,
		}
	}
	return &CredentialStore{records: records}, nil
}

// NewDemoStore seeds the four demo operators of the store.
func NewDemoStore() (*CredentialStore, error) {
	return NewCredentialStore([]SeedOperator{
		{Username: "admin", Password: "admin123", DisplayName: "Administrador", Role: domain.RoleAdmin},
		{Username: "cajero1", Password: "caja123", DisplayName: "Ana García", Role: domain.RoleCashier},
		{Username: "cajero2", Password: "caja123", DisplayName: "Carlos López", Role: domain.RoleCashier},
		{Username: "maria", Password: "maria123", DisplayName: "María Rodríguez", Role: domain.RoleCashier},
	})
}

// Verify checks a username/password pair. The error does not distinguish an
// unknown user from a wrong password.
func (s *CredentialStore) Verify(username, password string) (domain.Operator, error) {
	rec, ok := s.records[username]
	if !ok {
		return domain.Operator{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return domain.Operator{}, ErrInvalidCredentials
	}
	return rec.operator, nil
}
