package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "clubmanager_backend/internals/features/admin/controller"
)

func BackupAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewBackupController(db)

	r.Get("/backup/csv", ctrl.ExportCSV)
}
