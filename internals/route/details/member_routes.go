package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubmanager_backend/internals/constants"
	memberController "clubmanager_backend/internals/features/members/controller"
	authmw "clubmanager_backend/internals/middlewares/auth"
)

func MemberUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMemberController(db)

	r.Get("/members", ctrl.GetMembers)
	r.Get("/members/:id", ctrl.GetMember)
	r.Get("/members/:id/debts", ctrl.GetMemberDebts)
	r.Get("/members/:id/statement", ctrl.GetMemberStatement)

	// enrollment: admin atau profesor
	enroll := authmw.OnlyRoles(constants.RoleErrorStaff("inscripciones"), constants.EnrollmentRoles...)
	r.Post("/members/:id/activities", enroll, ctrl.EnrollActivity)
	r.Delete("/members/:id/activities/:activityId", enroll, ctrl.UnenrollActivity)
}

func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMemberController(db)

	r.Post("/members", ctrl.CreateMember)
	r.Patch("/members/:id", ctrl.UpdateMember)
	r.Delete("/members/:id", ctrl.DeactivateMember)
}
