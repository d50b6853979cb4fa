package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/helper"
	"lalibela_manager/utils"
)

// Protected gates admin routes: a valid unexpired token must arrive in the
// access_token cookie or the Authorization header.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// OptionalJWT parses a bearer token when one is present but never rejects.
// Used on mixed public/admin reads such as the marketing feed.
func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := helper.ParseToken(tokenString)
		if err != nil || !token.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", token)
		return c.Next()
	}
}
