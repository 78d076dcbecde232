package handlers

import (
	"kalahaat/internal/models"
	"kalahaat/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for the administration surface:
// the dashboard overview, artisan approval, the team roster and the
// settlement account. The routes are mounted behind the JWT middleware;
// the underlying services still check the actor's permissions
// themselves.
type AdminHandler struct {
	store    *session.Store
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store *session.Store) *AdminHandler {
	return &AdminHandler{
		store:    store,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin routes on the given (already
// protected) router group.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/overview", h.HandleOverview)
	router.Get("/artisans", h.HandleListArtisans)
	router.Post("/artisans/:id/approve", h.HandleApproveArtisan)
	router.Delete("/artisans/:id", h.HandleDeleteArtisan)
	router.Get("/team", h.HandleListTeam)
	router.Post("/team/:id/verify", h.HandleVerifyTeamMember)
	router.Get("/bank", h.HandleGetBankDetails)
	router.Put("/bank", h.HandleSaveBankDetails)
}

// HandleOverview returns the dashboard aggregates.
func (h *AdminHandler) HandleOverview(c *fiber.Ctx) error {
	overview, err := h.store.Stats()
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(overview)
}

// HandleListArtisans lists producer profiles. With ?status=pending only
// the unverified ones are returned.
func (h *AdminHandler) HandleListArtisans(c *fiber.Ctx) error {
	var err error
	var artisans interface{}
	if c.Query("status") == "pending" {
		artisans, err = h.store.PendingArtisans()
	} else {
		artisans, err = h.store.Artisans()
	}
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(artisans)
}

// HandleApproveArtisan flips an artisan to verified.
func (h *AdminHandler) HandleApproveArtisan(c *fiber.Ctx) error {
	if err := h.store.ApproveArtisan(c.Params("id")); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Artisan approved"})
}

// HandleDeleteArtisan removes an artisan together with every product
// they sell.
func (h *AdminHandler) HandleDeleteArtisan(c *fiber.Ctx) error {
	if err := h.store.DeleteArtisan(c.Params("id")); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Artisan removed"})
}

// HandleListTeam lists the staff roster, passwords stripped.
func (h *AdminHandler) HandleListTeam(c *fiber.Ctx) error {
	members, err := h.store.TeamMembers()
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(members)
}

// HandleVerifyTeamMember flips a staff account to verified so password
// login starts working for it.
func (h *AdminHandler) HandleVerifyTeamMember(c *fiber.Ctx) error {
	if err := h.store.VerifyTeamMember(c.Params("id")); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Team member verified"})
}

// HandleGetBankDetails returns the settlement account, or a null body
// when none is configured yet. Admin only; the team role is rejected by
// the service even though the middleware lets it reach this group.
func (h *AdminHandler) HandleGetBankDetails(c *fiber.Ctx) error {
	details, err := h.store.BankDetails()
	if err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{"details": details})
}

// HandleSaveBankDetails replaces the settlement account.
func (h *AdminHandler) HandleSaveBankDetails(c *fiber.Ctx) error {
	var details models.BankDetails
	if err := c.BodyParser(&details); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(details); err != nil {
		return validationFail(c, err)
	}

	if err := h.store.SaveBankDetails(details); err != nil {
		return failJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bank details updated successfully"})
}
