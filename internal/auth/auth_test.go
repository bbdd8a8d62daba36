package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/config"
)

func testGate(t *testing.T) *Gate {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	gate, err := NewGate(config.AuthConfig{
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		TokenTTLHours:     1,
	})
	require.NoError(t, err)
	return gate
}

func TestGateLoginAndVerify(t *testing.T) {
	gate := testGate(t)

	sess, err := gate.Login("admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "admin@example.com", sess.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)

	email, err := gate.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestGateLoginRejectsBadCredentials(t *testing.T) {
	gate := testGate(t)

	_, err := gate.Login("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = gate.Login("intruder@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGateVerifyRejectsGarbage(t *testing.T) {
	gate := testGate(t)

	_, err := gate.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = gate.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGateVerifyRejectsExpiredToken(t *testing.T) {
	gate := testGate(t)

	sess, err := gate.Login("admin@example.com", "s3cret")
	require.NoError(t, err)

	// Move the gate clock past expiry.
	gate.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = gate.Verify(sess.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewGateRequiresConfig(t *testing.T) {
	_, err := NewGate(config.AuthConfig{})
	assert.Error(t, err)

	_, err = NewGate(config.AuthConfig{AdminEmail: "a@b.c", AdminPasswordHash: "x"})
	assert.Error(t, err, "missing jwt secret")
}
