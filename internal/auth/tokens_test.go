package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvaquero/mazmorra/internal/auth"
	"github.com/dvaquero/mazmorra/internal/errors"
	"github.com/dvaquero/mazmorra/internal/pkg/clock"
)

func newIssuer(t *testing.T, c clock.Clock) *auth.Issuer {
	t.Helper()
	issuer, err := auth.NewIssuer(&auth.Config{
		Secret: "test-secret",
		Clock:  c,
	})
	require.NoError(t, err)
	return issuer
}

func TestIssueAndVerify(t *testing.T) {
	issuer := newIssuer(t, clock.New())

	token, err := issuer.Issue("player1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	playerID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "player1", playerID)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := newIssuer(t, clock.New())

	_, err := issuer.Verify("not-a-token")
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := newIssuer(t, clock.New())
	other, err := auth.NewIssuer(&auth.Config{Secret: "other-secret", Clock: clock.New()})
	require.NoError(t, err)

	token, err := issuer.Issue("player1")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestTokenExpires(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	frozen := clock.NewFixed(start)
	issuer := newIssuer(t, frozen)

	token, err := issuer.Issue("player1")
	require.NoError(t, err)

	// still valid just before the 24h boundary
	frozen.Time = start.Add(23 * time.Hour)
	_, err = issuer.Verify(token)
	assert.NoError(t, err)

	// expired after it
	frozen.Time = start.Add(25 * time.Hour)
	_, err = issuer.Verify(token)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestIssueRequiresPlayerID(t *testing.T) {
	issuer := newIssuer(t, clock.New())

	_, err := issuer.Issue("")
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	_, err := auth.NewIssuer(&auth.Config{Clock: clock.New()})
	assert.Error(t, err)

	_, err = auth.NewIssuer(&auth.Config{Secret: "s"})
	assert.Error(t, err)
}
