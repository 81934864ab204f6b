// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A recovery token is never accepted as a session and vice versa.
const (
	PurposeSession  = "session"
	PurposeRecovery = "recovery"
)

var ErrWrongPurpose = errors.New("token issued for another purpose")

type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
	now          func() time.Time
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
		now:          time.Now,
	}
}

type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	// Nonce binds a recovery token to one stored recovery hash.
	Nonce string `json:"nonce,omitempty"`
	jwt.RegisteredClaims
}

// Generate issues a session token.
func (tm *TokenManager) Generate(userID, email string) (string, time.Time, error) {
	return tm.sign(Claims{UserID: userID, Email: email, Purpose: PurposeSession}, tm.expiryPeriod)
}

// GenerateRecovery issues a short lived password recovery token.
func (tm *TokenManager) GenerateRecovery(userID, email, nonce string, ttl time.Duration) (string, time.Time, error) {
	return tm.sign(Claims{UserID: userID, Email: email, Purpose: PurposeRecovery, Nonce: nonce}, ttl)
}

func (tm *TokenManager) sign(claims Claims, ttl time.Duration) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a session token.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	return tm.parse(tokenString, PurposeSession)
}

// ValidateRecovery parses a recovery token.
func (tm *TokenManager) ValidateRecovery(tokenString string) (*Claims, error) {
	return tm.parse(tokenString, PurposeRecovery)
}

func (tm *TokenManager) parse(tokenString, purpose string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Purpose != purpose {
		return nil, ErrWrongPurpose
	}

	return claims, nil
}
