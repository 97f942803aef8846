package media

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the product image upload endpoint. Its responses keep the
// numeric success flag the admin frontend checks.
type Handler struct {
	storage Storage
}

// NewHandler constructs a media HTTP handler.
func NewHandler(storage Storage) *Handler {
	return &Handler{storage: storage}
}

// Upload stores a multipart image together with the product details it
// belongs to and returns the resulting image URL.
func (h *Handler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": 0,
			"message": "No file uploaded",
		})
	}

	var product map[string]any
	if err := json.Unmarshal([]byte(c.FormValue("product")), &product); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": 0,
			"message": "Invalid product details. Ensure JSON properties are double-quoted.",
		})
	}
	if product == nil {
		product = map[string]any{}
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "Error uploading product")
	}
	defer f.Close()

	name := fmt.Sprintf("image_%d%s", time.Now().UnixMilli(), filepath.Ext(fileHeader.Filename))
	url, err := h.storage.Save(c.UserContext(), name, f)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "Error uploading product")
	}

	product["image"] = url

	return c.JSON(fiber.Map{
		"success":   1,
		"image_url": url,
		"product":   product,
	})
}
