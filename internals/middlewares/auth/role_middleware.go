// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/constants"
)

// RequireAdmin membatasi route hanya untuk role admin.
func RequireAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// RequireStudent membatasi route hanya untuk siswa.
func RequireStudent(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleStudent {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStudent(feature))
		}
		return c.Next()
	}
}
