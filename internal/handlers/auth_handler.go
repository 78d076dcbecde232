package handlers

import (
	"kalahaat/internal/i18n"
	"kalahaat/internal/services"
	"kalahaat/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles HTTP requests for the three authentication paths,
// registration and credential recovery.
type AuthHandler struct {
	store    *session.Store
	bundle   *i18n.Bundle
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *session.Store, bundle *i18n.Bundle) *AuthHandler {
	return &AuthHandler{
		store:    store,
		bundle:   bundle,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/customer", h.HandleCustomerLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Post("/otp/request", h.HandleRequestCode)
	authRoutes.Post("/otp/verify", h.HandleVerifyCode)
	authRoutes.Post("/team/register", h.HandleRegisterTeamMember)
	authRoutes.Post("/artisan/register", h.HandleRegisterArtisan)
	authRoutes.Post("/password-reset", h.HandlePasswordReset)
}

// LoginRequest represents the request body for the password path.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin runs the password path for admin and team members.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	result, err := h.store.LoginWithPassword(req.Username, req.Password)
	if err != nil {
		logrus.WithField("username", req.Username).WithError(err).Info("password login rejected")
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

// CustomerLoginRequest carries the optional display name for the
// unauthenticated customer path.
type CustomerLoginRequest struct {
	Name string `json:"name"`
}

// HandleCustomerLogin logs in a customer without a credential check.
func (h *AuthHandler) HandleCustomerLogin(c *fiber.Ctx) error {
	var req CustomerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	user := h.store.LoginAsCustomer(req.Name)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

// HandleLogout clears the current actor and the cart.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	h.store.Logout()
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// OTPRequest carries the producer's registered mobile number.
type OTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// HandleRequestCode starts the one-time-code path. The response is an
// opaque acknowledgement; the code travels through the SMS channel.
func (h *AuthHandler) HandleRequestCode(c *fiber.Ctx) error {
	var req OTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.store.RequestCode(req.Mobile); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": h.bundle.T("codeSent", langFrom(c)),
	})
}

// OTPVerifyRequest carries the mobile number and the submitted code.
type OTPVerifyRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

// HandleVerifyCode completes the one-time-code path.
func (h *AuthHandler) HandleVerifyCode(c *fiber.Ctx) error {
	var req OTPVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	result, err := h.store.VerifyCode(req.Mobile, req.Code)
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

// HandleRegisterTeamMember creates an unverified staff account. It does
// not log the actor in.
func (h *AuthHandler) HandleRegisterTeamMember(c *fiber.Ctx) error {
	var req services.RegisterTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	member, err := h.store.RegisterTeamMember(req)
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": h.bundle.T("registrationPending", langFrom(c)),
		"member":  member,
	})
}

// HandleRegisterArtisan creates an unverified producer profile.
func (h *AuthHandler) HandleRegisterArtisan(c *fiber.Ctx) error {
	var req services.RegisterArtisanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	artisan, err := h.store.RegisterArtisan(req)
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": h.bundle.T("registrationPending", langFrom(c)),
		"artisan": artisan,
	})
}

// PasswordResetRequest carries the account email.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandlePasswordReset sends a reset notification. It never changes the
// password.
func (h *AuthHandler) HandlePasswordReset(c *fiber.Ctx) error {
	var req PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFail(c, err)
	}

	if err := h.store.RequestPasswordReset(req.Email); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"message": h.bundle.T("resetEmailSent", langFrom(c)),
	})
}
