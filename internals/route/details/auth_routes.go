package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "clubmanager_backend/internals/features/users/auth/controller"
	userController "clubmanager_backend/internals/features/users/user/controller"
	middlewares "clubmanager_backend/internals/middlewares"
)

// AuthPublicRoutes: login/register/reset — tanpa token, rate limit ketat.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/refresh", ctrl.Refresh)
	r.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	r.Post("/reset-password", ctrl.ResetPassword)
}

// AuthUserRoutes: aksi akun milik user login.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/auth/logout", ctrl.Logout)
	r.Post("/auth/change-password", ctrl.ChangePassword)
}

// UserAdminRoutes: manajemen user club oleh admin.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r.Get("/users", ctrl.GetUsers)
	r.Post("/users", ctrl.CreateUser)
	r.Patch("/users/:id", ctrl.UpdateUser)
	r.Delete("/users/:id", ctrl.DeleteUser)
}
