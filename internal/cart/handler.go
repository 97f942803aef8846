package cart

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/identity"
	"github.com/kinsha-retail/kinsha_shop/internal/middleware"
)

// Handler exposes cart endpoints. Both sit behind the auth-token gate.
type Handler struct {
	service *Service
}

// NewHandler constructs a cart HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// Add increments a cart entry for the authenticated user.
func (h *Handler) Add(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.UserIDKey).(string)

	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.service.AddItem(c.UserContext(), uid, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidItem):
			return fiber.NewError(http.StatusBadRequest, "Product ID and quantity are required")
		case errors.Is(err, identity.ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "User not found")
		default:
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product added to cart", "cart": cart})
}

// Get returns the authenticated user's cart.
func (h *Handler) Get(c *fiber.Ctx) error {
	uid, _ := c.Locals(middleware.UserIDKey).(string)

	cart, err := h.service.Get(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "cart": cart})
}
