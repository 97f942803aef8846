package catalog

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes catalog endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalog HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addProductRequest struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

type removeProductRequest struct {
	ID int64 `json:"id"`
}

// Add creates a product.
func (h *Handler) Add(c *fiber.Ctx) error {
	var req addProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Add(c.UserContext(), AddInput{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidProduct) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "name": p.Name})
}

// Remove deletes a product and its stored image.
func (h *Handler) Remove(c *fiber.Ctx) error {
	var req removeProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Remove(c.UserContext(), req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "name": p.Name})
}

// All returns the full catalog as a bare array, the shape the storefront
// already consumes.
func (h *Handler) All(c *fiber.Ctx) error {
	products, err := h.service.All(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// NewCollections returns the latest products as a bare array.
func (h *Handler) NewCollections(c *fiber.Ctx) error {
	products, err := h.service.NewCollections(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Popular returns the featured products of the flagship category.
func (h *Handler) Popular(c *fiber.Ctx) error {
	products, err := h.service.Popular(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "popular": products})
}
