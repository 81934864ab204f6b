package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	encoded, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := hasher.Verify("Sup3rSecret", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = hasher.Verify("Sup3rSecret", "$bcrypt$nope")
	assert.True(t, errors.Is(err, ErrMalformedHash))
}

func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"Short1", "at least 8"},
		{"alllower1", "uppercase"},
		{"ALLUPPER1", "lowercase"},
		{"NoDigitsHere", "number"},
		{"Valid123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := CheckPasswordPolicy(tt.password)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Generate("user-1", "ana@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = tm.ValidateRecovery(token)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	_, err = NewTokenManager("other-secret", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenManagerExpiry(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	issued := time.Now()
	tm.now = func() time.Time { return issued }

	token, _, err := tm.GenerateRecovery("user-1", "ana@example.com", "nonce", 10*time.Minute)
	require.NoError(t, err)

	tm.now = func() time.Time { return issued.Add(11 * time.Minute) }
	_, err = tm.ValidateRecovery(token)
	assert.Error(t, err)
}

func TestOperatorCredential(t *testing.T) {
	hasher := NewPasswordHasher()
	hash, err := hasher.Hash("Operator123")
	require.NoError(t, err)

	op := NewOperatorCredential("Ops@Example.com", hash, hasher)
	require.NotNil(t, op)

	assert.True(t, op.Check("ops@example.com", "Operator123"))
	assert.False(t, op.Check("ops@example.com", "operator123"))
	assert.False(t, op.Check("someone@example.com", "Operator123"))

	assert.Nil(t, NewOperatorCredential("", hash, hasher))

	var disabled *OperatorCredential
	assert.False(t, disabled.Check("ops@example.com", "Operator123"))
}
