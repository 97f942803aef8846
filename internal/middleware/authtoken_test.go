package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/auth"
)

func gateApp(t *testing.T, signer *auth.Signer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/cart", AuthToken(signer), func(c *fiber.Ctx) error {
		uid, _ := c.Locals(UserIDKey).(string)
		return c.SendString(uid)
	})
	return app
}

func TestAuthTokenMissingHeader(t *testing.T) {
	app := gateApp(t, auth.NewSigner([]byte("secret"), 0))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/cart", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthTokenInvalidToken(t *testing.T) {
	app := gateApp(t, auth.NewSigner([]byte("secret"), 0))

	req := httptest.NewRequest(fiber.MethodGet, "/cart", nil)
	req.Header.Set("auth-token", "garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthTokenWrongSecret(t *testing.T) {
	app := gateApp(t, auth.NewSigner([]byte("secret"), 0))

	token, err := auth.NewSigner([]byte("other"), 0).Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodGet, "/cart", nil)
	req.Header.Set("auth-token", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthTokenBindsUserID(t *testing.T) {
	signer := auth.NewSigner([]byte("secret"), 0)
	app := gateApp(t, signer)

	token, err := signer.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodGet, "/cart", nil)
	req.Header.Set("auth-token", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := make([]byte, 32)
	n, _ := resp.Body.Read(body)
	resp.Body.Close()
	if string(body[:n]) != "user-1" {
		t.Fatalf("expected bound user id, got %q", body[:n])
	}
}
