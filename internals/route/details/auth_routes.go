// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "absensiku_backend/internals/features/users/auth/controller"
	"absensiku_backend/internals/middlewares"
)

// AuthRoutes memasang endpoint publik: login (dibatasi rate limiter
// khusus) dan refresh token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh", ctl.Refresh)
}
