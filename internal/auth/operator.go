// internal/auth/operator.go
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"
)

// OperatorCredential is the out-of-band super admin login. It has no
// Account, no profile and no session; it is checked on every request.
type OperatorCredential struct {
	emailDigest  [32]byte
	passwordHash string
	hasher       *PasswordHasher
}

// NewOperatorCredential returns nil when either value is empty, which
// disables operator access.
func NewOperatorCredential(email, passwordHash string, hasher *PasswordHasher) *OperatorCredential {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || passwordHash == "" {
		return nil
	}
	return &OperatorCredential{
		emailDigest:  sha256.Sum256([]byte(email)),
		passwordHash: passwordHash,
		hasher:       hasher,
	}
}

// Check compares both values without short-circuiting on the email so the
// response time does not reveal which half was wrong.
func (o *OperatorCredential) Check(email, password string) bool {
	if o == nil {
		return false
	}

	digest := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	emailOK := subtle.ConstantTimeCompare(digest[:], o.emailDigest[:]) == 1

	passwordOK, err := o.hasher.Verify(password, o.passwordHash)
	if err != nil {
		return false
	}

	return emailOK && passwordOK
}
