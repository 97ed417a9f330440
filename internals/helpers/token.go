// file: internals/helpers/token.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ErrNoUserContext = errors.New("user context missing")

// GetNISFromLocals mengambil NIS user yang disimpan middleware auth.
func GetNISFromLocals(c *fiber.Ctx) (string, error) {
	v := c.Locals("nis")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", ErrNoUserContext
	}
	return s, nil
}

// GetRoleFromLocals mengambil role user ("admin"/"student").
func GetRoleFromLocals(c *fiber.Ctx) string {
	if s, ok := c.Locals("role").(string); ok {
		return s
	}
	return ""
}

// GetKelasFromLocals mengambil kelas siswa dari klaim token (kosong untuk admin).
func GetKelasFromLocals(c *fiber.Ctx) string {
	if s, ok := c.Locals("kelas").(string); ok {
		return s
	}
	return ""
}
