// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/auth/dto"
	"absensiku_backend/internals/features/users/auth/service"
	helper "absensiku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return validationToJson(c, err)
	}

	resp, err := service.Login(ctl.DB, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		log.Printf("[AUTH] login error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login gagal")
	}
	return helper.JsonOK(c, "Login berhasil", resp)
}

// POST /api/auth/refresh
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return validationToJson(c, err)
	}

	resp, err := service.Refresh(ctl.DB, req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
		}
		log.Printf("[AUTH] refresh error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Refresh gagal")
	}
	return helper.JsonOK(c, "Token diperbarui", resp)
}

// POST /api/u/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if err := service.Logout(ctl.DB, c); err != nil {
		log.Printf("[AUTH] logout error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout gagal")
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/u/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	nis, err := helper.GetNISFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "ok", dto.UserResponse{
		NIS:   nis,
		Nama:  localsString(c, "nama"),
		Kelas: helper.GetKelasFromLocals(c),
		Role:  helper.GetRoleFromLocals(c),
	})
}

func localsString(c *fiber.Ctx, key string) string {
	if s, ok := c.Locals(key).(string); ok {
		return s
	}
	return ""
}

func validationToJson(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := map[string][]string{}
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return helper.JsonValidationError(c, fields)
}
