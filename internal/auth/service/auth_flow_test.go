package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	"github.com/EleisonC/Auth-Service/internal/auth/dto"
	"github.com/EleisonC/Auth-Service/internal/auth/password"
	"github.com/EleisonC/Auth-Service/internal/auth/repository/memory"
	"github.com/EleisonC/Auth-Service/internal/auth/service"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

// captureMailer records the last delivered code so flow tests can play the
// user's part.
type captureMailer struct {
	lastAttemptID domain.AttemptID
	lastCode      domain.TwoFACode
}

func (m *captureMailer) SendTwoFACode(_ context.Context, _ domain.Email, attemptID domain.AttemptID, code domain.TwoFACode) error {
	m.lastAttemptID = attemptID
	m.lastCode = code

	return nil
}

// newFlowService wires the orchestrator against the real in-memory stores and
// a real token service, as cmd/main does for local runs.
func newFlowService(t *testing.T) (*service.AuthService, *captureMailer) {
	t.Helper()

	hasher := password.NewHasher()
	mailer := &captureMailer{}

	s := service.NewAuthService(
		memory.NewUserStore(hasher),
		memory.NewTwoFACodeStore(10*time.Minute),
		memory.NewBannedTokenStore(),
		service.NewTokenService("flow-test-secret", 10*time.Minute),
		mailer,
		testLogger(),
	)

	return s, mailer
}

func TestFlow_LoginValidateLogout(t *testing.T) {
	s, _ := newFlowService(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, dto.SignupInput{Email: "a@x.com", Password: "secret123"}))

	result, err := s.Login(ctx, dto.LoginInput{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.False(t, result.TwoFARequired)
	require.NotEmpty(t, result.Token)

	claims, err := s.ValidateToken(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)

	require.NoError(t, s.Logout(ctx, result.Token))

	_, err = s.ValidateToken(ctx, result.Token)
	assert.ErrorIs(t, err, autherror.ErrTokenRevoked)

	// The session artifact is gone; a second logout cannot succeed.
	assert.ErrorIs(t, s.Logout(ctx, result.Token), autherror.ErrTokenRevoked)
}

func TestFlow_SecondFactor(t *testing.T) {
	s, mailer := newFlowService(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, dto.SignupInput{
		Email: "b@x.com", Password: "secret123", Requires2FA: true,
	}))

	result, err := s.Login(ctx, dto.LoginInput{Email: "b@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.True(t, result.TwoFARequired)
	require.Empty(t, result.Token)
	require.Equal(t, mailer.lastAttemptID.String(), result.LoginAttemptID)

	wrongCode := "000000"
	if mailer.lastCode.Value() == wrongCode {
		wrongCode = "000001"
	}

	_, err = s.Verify2FA(ctx, dto.Verify2FAInput{
		Email:          "b@x.com",
		LoginAttemptID: result.LoginAttemptID,
		Code:           wrongCode,
	})
	assert.ErrorIs(t, err, autherror.ErrChallengeMismatch)

	// The challenge survives the failed attempt until its TTL or the cap.
	verified, err := s.Verify2FA(ctx, dto.Verify2FAInput{
		Email:          "b@x.com",
		LoginAttemptID: result.LoginAttemptID,
		Code:           mailer.lastCode.Value(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, verified.Token)

	_, err = s.ValidateToken(ctx, verified.Token)
	assert.NoError(t, err)

	// Consumption is one-time; replaying the same verify fails.
	_, err = s.Verify2FA(ctx, dto.Verify2FAInput{
		Email:          "b@x.com",
		LoginAttemptID: result.LoginAttemptID,
		Code:           mailer.lastCode.Value(),
	})
	assert.ErrorIs(t, err, autherror.ErrChallengeNotFound)
}

func TestFlow_ReloginSupersedesChallenge(t *testing.T) {
	s, mailer := newFlowService(t)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, dto.SignupInput{
		Email: "b@x.com", Password: "secret123", Requires2FA: true,
	}))

	first, err := s.Login(ctx, dto.LoginInput{Email: "b@x.com", Password: "secret123"})
	require.NoError(t, err)
	firstCode := mailer.lastCode

	second, err := s.Login(ctx, dto.LoginInput{Email: "b@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEqual(t, first.LoginAttemptID, second.LoginAttemptID)

	// The first challenge is dead even though its TTL has not elapsed.
	_, err = s.Verify2FA(ctx, dto.Verify2FAInput{
		Email:          "b@x.com",
		LoginAttemptID: first.LoginAttemptID,
		Code:           firstCode.Value(),
	})
	assert.ErrorIs(t, err, autherror.ErrChallengeMismatch)

	verified, err := s.Verify2FA(ctx, dto.Verify2FAInput{
		Email:          "b@x.com",
		LoginAttemptID: second.LoginAttemptID,
		Code:           mailer.lastCode.Value(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, verified.Token)
}
