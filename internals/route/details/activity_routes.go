package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "clubmanager_backend/internals/features/activities/controller"
)

func ActivityUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityController(db)

	r.Get("/activities", ctrl.GetActivities)
}

func ActivityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityController(db)

	r.Post("/activities", ctrl.CreateActivity)
	r.Patch("/activities/:id", ctrl.UpdateActivity)
	r.Delete("/activities/:id", ctrl.DeleteActivity)
}
