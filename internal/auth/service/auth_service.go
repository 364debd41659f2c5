// Package service holds the authentication orchestration: the state machine
// that composes the user, 2FA-code, and banned-token stores with the token
// issuer. Stores are reached only through their domain contracts; any backend
// can be swapped at construction time.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	"github.com/EleisonC/Auth-Service/internal/auth/dto"
	"github.com/EleisonC/Auth-Service/internal/auth/email"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

// LoginResult is the outcome of a successful credential check: either an
// issued token (no 2FA) or a pending challenge correlated by attempt ID.
type LoginResult struct {
	Token          string
	ExpiresAt      time.Time
	TwoFARequired  bool
	LoginAttemptID string
}

// AuthService drives login, second-factor verification, token validation, and
// logout. It owns no state of its own; every step is an independent store
// call, so a crash mid-flow leaves nothing that is unsafe to retry.
type AuthService struct {
	users  domain.UserStore
	codes  domain.TwoFACodeStore
	banned domain.BannedTokenStore
	tokens TokenGenerator
	mailer email.Client
	logger *slog.Logger
}

func NewAuthService(
	users domain.UserStore,
	codes domain.TwoFACodeStore,
	banned domain.BannedTokenStore,
	tokens TokenGenerator,
	mailer email.Client,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		codes:  codes,
		banned: banned,
		tokens: tokens,
		mailer: mailer,
		logger: logger,
	}
}

// Signup validates input shapes and creates the user record. A duplicate
// email fails with ErrUserAlreadyExists and leaves the first record intact.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) error {
	emailAddr, err := domain.ParseEmail(input.Email)
	if err != nil {
		return autherror.ErrInvalidInput
	}

	pw, err := domain.ParsePassword(input.Password)
	if err != nil {
		return autherror.ErrInvalidInput
	}

	if err := s.users.Add(ctx, emailAddr, pw, input.Requires2FA); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user created", slog.String("email", emailAddr.String()))

	return nil
}

// Login checks credentials and either issues a token directly or opens a 2FA
// challenge. ErrUserNotFound and ErrInvalidCredentials are collapsed into one
// signal so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*LoginResult, error) {
	emailAddr, err := domain.ParseEmail(input.Email)
	if err != nil {
		return nil, autherror.ErrInvalidInput
	}

	pw, err := domain.ParsePassword(input.Password)
	if err != nil {
		return nil, autherror.ErrInvalidInput
	}

	if err := s.users.Validate(ctx, emailAddr, pw); err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) || errors.Is(err, autherror.ErrInvalidCredentials) {
			return nil, autherror.ErrInvalidCredentials
		}

		return nil, err
	}

	user, err := s.users.Get(ctx, emailAddr)
	if err != nil {
		return nil, err
	}

	if user.Requires2FA {
		return s.beginTwoFactor(ctx, emailAddr)
	}

	token, expiresAt, err := s.tokens.Generate(emailAddr)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// beginTwoFactor issues a fresh challenge, superseding any live one for the
// email, and hands the code to the delivery collaborator. The attempt ID goes
// back to the caller; the code only travels out-of-band.
func (s *AuthService) beginTwoFactor(ctx context.Context, emailAddr domain.Email) (*LoginResult, error) {
	attemptID := domain.NewAttemptID()

	code, err := domain.NewTwoFACode()
	if err != nil {
		return nil, err
	}

	if err := s.codes.Add(ctx, emailAddr, attemptID, code); err != nil {
		return nil, err
	}

	if err := s.mailer.SendTwoFACode(ctx, emailAddr, attemptID, code); err != nil {
		return nil, err
	}

	return &LoginResult{TwoFARequired: true, LoginAttemptID: attemptID.String()}, nil
}

// Verify2FA consumes the live challenge when both the attempt ID and the code
// match exactly. The challenge is deleted only on success; a failed attempt
// bumps the counter and leaves it usable until its TTL or the attempt cap.
// Replaying a successful verify fails with ErrChallengeNotFound.
func (s *AuthService) Verify2FA(ctx context.Context, input dto.Verify2FAInput) (*LoginResult, error) {
	emailAddr, err := domain.ParseEmail(input.Email)
	if err != nil {
		return nil, autherror.ErrInvalidInput
	}

	attemptID, err := domain.ParseAttemptID(input.LoginAttemptID)
	if err != nil {
		return nil, autherror.ErrInvalidInput
	}

	code, err := domain.ParseTwoFACode(input.Code)
	if err != nil {
		return nil, autherror.ErrInvalidInput
	}

	challenge, err := s.codes.Get(ctx, emailAddr)
	if err != nil {
		return nil, err
	}

	if challenge.AttemptID != attemptID || challenge.Code.Value() != code.Value() {
		exceeded, recordErr := s.codes.RecordFailure(ctx, emailAddr)
		if recordErr != nil && !errors.Is(recordErr, autherror.ErrChallengeNotFound) &&
			!errors.Is(recordErr, autherror.ErrChallengeExpired) {
			return nil, recordErr
		}
		if exceeded {
			s.logger.WarnContext(ctx, "2fa attempt cap reached", slog.String("email", emailAddr.String()))
		}

		return nil, autherror.ErrChallengeMismatch
	}

	if err := s.codes.Remove(ctx, emailAddr); err != nil {
		// A concurrent verify consumed it first; treat this call as the loser.
		if errors.Is(err, autherror.ErrChallengeNotFound) {
			return nil, autherror.ErrChallengeNotFound
		}

		return nil, err
	}

	token, expiresAt, err := s.tokens.Generate(emailAddr)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken answers whether a bearer token is still good: signature and
// expiry via the issuer, then the ban list on the raw token string.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*SessionClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	banned, err := s.banned.IsBanned(ctx, token)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, autherror.ErrTokenRevoked
	}

	return claims, nil
}

// Logout revokes a valid, not-yet-revoked token for its remaining lifetime.
// A second logout with the same token fails with ErrTokenRevoked: the session
// artifact is gone after the first call.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)

	if err := s.banned.Ban(ctx, token, ttl); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "session revoked", slog.String("email", claims.Subject))

	return nil
}
