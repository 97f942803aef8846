package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kinsha-retail/kinsha_shop/internal/auth"
)

// UserIDKey is the request-local under which the gate stores the
// authenticated user id.
const UserIDKey = "user_id"

// Storefront clients send the token in a custom header rather than
// Authorization: Bearer.
const authTokenHeader = "auth-token"

// One message for every failure mode; clients must not learn whether the
// token was missing, malformed or expired.
const authFailureMessage = "Please authenticate using a valid token"

// AuthToken gates cart operations: it verifies the auth-token header and binds
// the user id into request locals before the handler runs.
func AuthToken(signer *auth.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(authTokenHeader)
		if token == "" {
			return fiber.NewError(http.StatusUnauthorized, authFailureMessage)
		}

		uid, err := signer.Verify(token)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, authFailureMessage)
		}

		c.Locals(UserIDKey, uid)
		return c.Next()
	}
}
