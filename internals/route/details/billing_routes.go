package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubmanager_backend/internals/constants"
	debtController "clubmanager_backend/internals/features/billing/debts/controller"
	paymentController "clubmanager_backend/internals/features/billing/payments/controller"
	authmw "clubmanager_backend/internals/middlewares/auth"
)

func BillingUserRoutes(r fiber.Router, db *gorm.DB) {
	debts := debtController.NewDebtController(db)
	payments := paymentController.NewPaymentController(db)

	r.Get("/debts", debts.GetDebts)
	r.Get("/debts/:id", debts.GetDebt)
	r.Get("/debts/:id/payments", payments.GetPayments)
	r.Post("/debts/:id/checkout", payments.Checkout)

	// catat pago manual: admin atau tesorero
	finance := authmw.OnlyRoles(constants.RoleErrorFinance("pagos"), constants.FinanceRoles...)
	r.Post("/debts/:id/payments", finance, payments.CreatePayment)
}

func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	debts := debtController.NewDebtController(db)

	r.Post("/debts/generate", debts.GenerateDebts)
	r.Post("/debts/charges", debts.CreateManualCharge)
}

// PaymentPublicRoutes: webhook midtrans — tanpa auth, diverifikasi via
// signature_key.
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	payments := paymentController.NewPaymentController(db)

	r.Post("/payments/notification", payments.HandleNotification)
}
