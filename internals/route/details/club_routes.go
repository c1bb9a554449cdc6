package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubController "clubmanager_backend/internals/features/club/controller"
)

func ClubUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := clubController.NewClubController(db)

	r.Get("/club", ctrl.GetClub)
}

func ClubAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := clubController.NewClubController(db)

	r.Patch("/club", ctrl.UpdateClub)
}
