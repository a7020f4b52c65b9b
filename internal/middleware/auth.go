package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/sunseekerapp/sunseeker-backend/internal/config"
)

// JWTProtected gates a route on a bearer access token. Fails closed: no
// token 401, bad signature or expired 403, unconfigured secret 500. On
// success the parsed token lands in c.Locals("user") for UserID.
func JWTProtected(cfg *config.Config) fiber.Handler {
	if cfg.JWTSecret == "" {
		return func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Server configuration error")
		}
	}

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).SendString("Access Denied")
			}
			return c.Status(fiber.StatusForbidden).SendString("Invalid Token")
		},
	})
}
