package handlers

import (
	"errors"
	"log"
	"strconv"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/permissions"
	"storefront/internal/serializers"
	"storefront/internal/services"
	"storefront/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for accounts.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app. The auth
// middleware guards the update endpoints; registration and listing are open.
func (h *AccountHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	accountRoutes := router.Group("/accounts")
	accountRoutes.Post("/", h.HandleRegister)
	accountRoutes.Get("/", h.HandleList)
	accountRoutes.Get("/newest/:num", h.HandleNewest)
	accountRoutes.Patch("/:id", auth, h.HandleUpdate)
	accountRoutes.Patch("/:id/management", auth, h.HandleSetActive)
}

// actorFrom returns the authenticated account stored by the token middleware.
func actorFrom(c *fiber.Ctx) *models.Account {
	actor, _ := c.Locals(middleware.AccountKey).(*models.Account)
	return actor
}

// HandleRegister handles new account registration. Open to anyone.
func (h *AccountHandler) HandleRegister(c *fiber.Ctx) error {
	var req serializers.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.ErrorMap(err),
		})
	}

	account, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  fiber.Map{"username": services.ErrUsernameTaken.Error()},
			})
		}
		log.Printf("Error registering account: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register account",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(serializers.NewAccountResponse(account))
}

// HandleList lists all accounts. Open to anyone.
func (h *AccountHandler) HandleList(c *fiber.Ctx) error {
	accounts, err := h.service.List()
	if err != nil {
		log.Printf("Error listing accounts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve accounts",
			"error":   err.Error(),
		})
	}
	return c.JSON(serializers.NewAccountListResponse(accounts))
}

// HandleNewest lists the :num most recently joined accounts, newest first.
func (h *AccountHandler) HandleNewest(c *fiber.Ctx) error {
	num, err := strconv.Atoi(c.Params("num"))
	if err != nil || num < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "num must be a non-negative integer",
		})
	}

	accounts, err := h.service.Newest(num)
	if err != nil {
		log.Printf("Error listing newest accounts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve accounts",
			"error":   err.Error(),
		})
	}
	return c.JSON(serializers.NewAccountListResponse(accounts))
}

// HandleUpdate applies a partial update to an account. Only the owning
// account may patch itself; attempts to change the active flag are dropped
// by the serializer.
func (h *AccountHandler) HandleUpdate(c *fiber.Ctx) error {
	target, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Account not found",
		})
	}

	if !permissions.CanModifyAccount(actorFrom(c), target) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"detail": "You do not have permission to perform this action.",
		})
	}

	var req serializers.AccountUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing account update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.ErrorMap(err),
		})
	}

	if err := h.service.Update(target, &req); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  fiber.Map{"username": services.ErrUsernameTaken.Error()},
			})
		}
		log.Printf("Error updating account %s: %v", target.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update account",
			"error":   err.Error(),
		})
	}

	return c.JSON(serializers.NewAccountResponse(target))
}

// HandleSetActive flips an account's active flag. Superusers only; every
// other field in the payload is ignored.
func (h *AccountHandler) HandleSetActive(c *fiber.Ctx) error {
	if !permissions.CanModifyActiveFlag(actorFrom(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"detail": "You do not have permission to perform this action.",
		})
	}

	target, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Account not found",
		})
	}

	var req serializers.ActiveFlagRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing management body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.ErrorMap(err),
		})
	}

	if err := h.service.SetActive(target, *req.IsActive); err != nil {
		log.Printf("Error setting active flag on account %s: %v", target.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update account",
			"error":   err.Error(),
		})
	}

	return c.JSON(serializers.NewAccountResponse(target))
}
