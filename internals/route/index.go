package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubmanager_backend/internals/constants"
	authmw "clubmanager_backend/internals/middlewares/auth"
	"clubmanager_backend/internals/route/details"
)

// SetupRoutes memetakan seluruh endpoint aplikasi.
//
//	/api/auth    → publik (login, register, reset password) + rate limit ketat
//	/api/public  → webhook gateway pembayaran (tanpa auth, signed)
//	/api/u       → semua user login (scoped ke club dari token)
//	/api/a       → khusus admin club
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	details.AuthPublicRoutes(api.Group("/auth"), db)
	details.PaymentPublicRoutes(api.Group("/public"), db)

	u := api.Group("/u", authmw.AuthMiddleware(db))
	details.AuthUserRoutes(u, db)
	details.ClubUserRoutes(u, db)
	details.MemberUserRoutes(u, db)
	details.ActivityUserRoutes(u, db)
	details.BillingUserRoutes(u, db)
	details.FinanceUserRoutes(u, db)

	a := api.Group("/a",
		authmw.AuthMiddleware(db),
		authmw.OnlyRoles(constants.RoleErrorAdmin("administración"), constants.AdminOnly...),
	)
	details.ClubAdminRoutes(a, db)
	details.UserAdminRoutes(a, db)
	details.MemberAdminRoutes(a, db)
	details.ActivityAdminRoutes(a, db)
	details.BillingAdminRoutes(a, db)
	details.FinanceAdminRoutes(a, db)
	details.BackupAdminRoutes(a, db)
}
