package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubmanager_backend/internals/constants"
	financeController "clubmanager_backend/internals/features/finance/controller"
	authmw "clubmanager_backend/internals/middlewares/auth"
)

// FinanceUserRoutes: baca kas & laporan, khusus admin/tesorero.
func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	categories := financeController.NewCategoryController(db)
	transactions := financeController.NewTransactionController(db)
	reports := financeController.NewReportController(db)

	fin := r.Group("/finance",
		authmw.OnlyRoles(constants.RoleErrorFinance("finanzas"), constants.FinanceRoles...))

	fin.Get("/categories", categories.GetCategories)
	fin.Get("/transactions", transactions.GetTransactions)
	fin.Get("/balance", transactions.GetBalance)

	fin.Get("/reports/income-by-activity", reports.IncomeByActivity)
	fin.Get("/reports/monthly-summary", reports.MonthlySummary)
	fin.Get("/reports/expense-by-category", reports.ExpenseByCategory)
	fin.Get("/reports/debtors", reports.Debtors)
}

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	categories := financeController.NewCategoryController(db)
	transactions := financeController.NewTransactionController(db)

	fin := r.Group("/finance")

	fin.Post("/categories", categories.CreateCategory)
	fin.Patch("/categories/:id", categories.UpdateCategory)
	fin.Delete("/categories/:id", categories.DeleteCategory)

	fin.Post("/transactions", transactions.CreateTransaction)
	fin.Delete("/transactions/:id", transactions.DeleteTransaction)
}
