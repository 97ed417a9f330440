// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "absensiku_backend/internals/features/users/auth/controller"
	uploadController "absensiku_backend/internals/features/utils/uploads/controller"
	"absensiku_backend/internals/middlewares"
)

// UserRoutes memasang endpoint akun untuk semua pengguna login.
func UserRoutes(user fiber.Router, db *gorm.DB) {
	authCtl := authController.NewAuthController(db)
	user.Post("/logout", authCtl.Logout)
	user.Get("/me", authCtl.Me)

	uploadCtl := uploadController.NewUploadController()
	user.Post("/uploads", middlewares.UploadRateLimiter(), uploadCtl.Upload)
}
