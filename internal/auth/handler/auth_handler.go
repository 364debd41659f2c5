package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EleisonC/Auth-Service/internal/auth/dto"
	"github.com/EleisonC/Auth-Service/internal/auth/service"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

// sessionCookieName carries the issued token back to browser clients.
const sessionCookieName = "jwt"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// statusFor maps service errors onto HTTP statuses. Credential, challenge,
// and token failures all come back 401 so a probing client learns nothing
// beyond "not authorized".
func statusFor(err error) int {
	switch {
	case errors.Is(err, autherror.ErrInvalidInput),
		errors.Is(err, autherror.ErrTokenMissing):
		return fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrUserAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrChallengeNotFound),
		errors.Is(err, autherror.ErrChallengeExpired),
		errors.Is(err, autherror.ErrChallengeMismatch),
		errors.Is(err, autherror.ErrTokenMalformed),
		errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenRevoked):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		// Backend failures are logged upstream; the body stays generic.
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// sessionToken extracts the bearer token for verify/logout calls: the request
// body wins, then the session cookie.
func sessionToken(c *fiber.Ctx, bodyToken string) string {
	if bodyToken != "" {
		return bodyToken
	}

	return c.Cookies(sessionCookieName)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.authService.Signup(c.Context(), input); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupOutput{
		Message: "User created successfully!",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	if result.TwoFARequired {
		return c.Status(fiber.StatusPartialContent).JSON(dto.TwoFactorRequiredOutput{
			Message:        "2FA required",
			LoginAttemptID: result.LoginAttemptID,
		})
	}

	setSessionCookie(c, result.Token, result.ExpiresAt)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": result.Token})
}

func (h *AuthHandler) Verify2FA(c *fiber.Ctx) error {
	var input dto.Verify2FAInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	result, err := h.authService.Verify2FA(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	setSessionCookie(c, result.Token, result.ExpiresAt)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": result.Token})
}

func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	var input dto.VerifyTokenInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	token := sessionToken(c, input.Token)
	if token == "" {
		return errorJSON(c, autherror.ErrTokenMissing)
	}

	if _, err := h.authService.ValidateToken(c.Context(), token); err != nil {
		return errorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookieName)
	if token == "" {
		return errorJSON(c, autherror.ErrTokenMissing)
	}

	if err := h.authService.Logout(c.Context(), token); err != nil {
		return errorJSON(c, err)
	}

	clearSessionCookie(c)

	return c.SendStatus(fiber.StatusOK)
}
