package handlers

import (
	"log"

	"storefront/internal/permissions"
	"storefront/internal/serializers"
	"storefront/internal/services"
	"storefront/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Reads are
// open; creation and mutation are guarded by the auth middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Post("/", auth, h.HandleCreate)
	productRoutes.Get("/:id", h.HandleDetail)
	productRoutes.Patch("/:id", auth, h.HandleUpdate)
}

// HandleList lists all products in the flat list view. Open to anyone.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(serializers.NewProductListResponse(products))
}

// HandleCreate creates a new product owned by the authenticated actor. Only
// sellers may create products; the owner is injected server-side.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	actor := actorFrom(c)
	if !permissions.CanCreateProduct(actor, c.Method()) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"detail": "You do not have permission to perform this action.",
		})
	}

	var req serializers.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product create body: %v", err)
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

	product := req.Product(actor)
	if err := h.service.Create(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(serializers.NewProductDetailResponse(product))
}

// HandleDetail retrieves a single product in the detail view, with the
// owning seller nested. Open to anyone.
func (h *ProductHandler) HandleDetail(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found",
		})
	}
	return c.JSON(serializers.NewProductDetailResponse(product))
}

// HandleUpdate applies a partial update to a product. Only the owning seller
// may mutate it; the seller reference itself is not settable.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": "Product not found",
		})
	}

	if !permissions.CanWriteProduct(actorFrom(c), product, c.Method()) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"detail": "You do not have permission to perform this action.",
		})
	}

	var req serializers.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product update body: %v", err)
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

	req.Apply(product)
	if err := h.service.Update(product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(serializers.NewProductDetailResponse(product))
}
