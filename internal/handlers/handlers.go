package handlers

import (
	"errors"
	"fmt"
	"strings"

	"kalahaat/internal/i18n"
	"kalahaat/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusForError maps core failures to HTTP status codes. Anything
// unrecognized is a 500; repository "not found" lookups become 404.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidCode):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotVerified),
		errors.Is(err, services.ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidMobile),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrUnknownSeller):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrContactTaken),
		errors.Is(err, services.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrEmailNotFound),
		errors.Is(err, services.ErrMobileNotFound):
		return fiber.StatusNotFound
	}
	if strings.Contains(err.Error(), "not found") {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// reasonForError returns the stable failure key surfaced alongside the
// HTTP status so clients can branch without parsing messages.
func reasonForError(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return "invalidCredentials"
	case errors.Is(err, services.ErrNotVerified):
		return "notVerified"
	case errors.Is(err, services.ErrInvalidCode):
		return "invalidCode"
	case errors.Is(err, services.ErrInvalidMobile):
		return "invalidMobile"
	case errors.Is(err, services.ErrUsernameTaken):
		return "usernameTaken"
	case errors.Is(err, services.ErrContactTaken):
		return "contactTaken"
	case errors.Is(err, services.ErrEmailNotFound):
		return "emailNotFound"
	case errors.Is(err, services.ErrMobileNotFound):
		return "mobileNotFound"
	case errors.Is(err, services.ErrPermissionDenied):
		return "permissionDenied"
	case errors.Is(err, services.ErrUnknownSeller):
		return "unknownSeller"
	case errors.Is(err, services.ErrInvalidStatus):
		return "invalidStatus"
	case errors.Is(err, services.ErrInvalidTransition):
		return "invalidTransition"
	}
	if strings.Contains(err.Error(), "not found") {
		return "notFound"
	}
	return "internal"
}

// failJSON writes the standard error envelope.
func failJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": err.Error(),
		"reason":  reasonForError(err),
	})
}

// validationFail writes a field→message map for validator errors.
func validationFail(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// langFrom reads the display language from the "lang" query parameter,
// defaulting to English.
func langFrom(c *fiber.Ctx) i18n.Language {
	lang := i18n.Language(c.Query("lang", string(i18n.English)))
	if !lang.Valid() {
		return i18n.English
	}
	return lang
}
