package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/identity"
	"github.com/kinsha-retail/kinsha_shop/internal/notification"
)

// Messages kept exactly as clients already parse them.
const (
	msgDuplicateEmail = "Existing user found with the same email"
	msgWrongPassword  = "Wrong Password"
	msgWrongEmail     = "Wrong Email id"
)

// Handler exposes signup and login endpoints.
type Handler struct {
	service  *Service
	notifier notification.Notifier
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(service *Service, notifier notification.Notifier) *Handler {
	return &Handler{service: service, notifier: notifier}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a user and returns a token.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.service.Signup(c.UserContext(), identity.Signup{
		Name:     req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailTaken):
			return fiber.NewError(http.StatusBadRequest, msgDuplicateEmail)
		case errors.Is(err, identity.ErrMissingCredentials):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return err
		}
	}

	if h.notifier != nil {
		_ = h.notifier.Send(c.UserContext(), notification.Message{
			Kind:        notification.KindWelcome,
			Destination: user.Email,
			Body:        "Welcome to the shop, " + user.Name,
		})
	}

	return c.JSON(fiber.Map{"success": true, "token": token})
}

// Login verifies credentials. Failures deliberately respond with HTTP 200 and
// success:false because deployed storefronts branch on the body, not the
// status code.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrUnknownEmail):
			return c.JSON(fiber.Map{"success": false, "errors": msgWrongEmail})
		case errors.Is(err, identity.ErrWrongPassword):
			return c.JSON(fiber.Map{"success": false, "errors": msgWrongPassword})
		default:
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true, "token": token})
}
