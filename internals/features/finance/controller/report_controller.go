package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubmanager_backend/internals/features/finance/model"
	"clubmanager_backend/internals/features/finance/service"
	helper "clubmanager_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// =============================
// GET /api/u/finance/reports/income-by-activity?from=&to=
// Ingreso per aktivitas; row tanpa aktivitas (cuota social, cargo manual,
// otros ingresos) masuk bucket "Cuota Social / Otros".
// =============================
func (ctrl *ReportController) IncomeByActivity(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.ClubTransactionModel{}).
		Where("club_transactions.club_transaction_club_id = ? AND club_transactions.club_transaction_type = ?",
			clubID, model.CategoryIncome)
	q, err = applyDateRange(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de fecha inválido. Use AAAA-MM-DD.")
	}

	type row struct {
		ActivityName *string
		Total        float64
	}
	var rows []row
	if err := q.
		Joins("LEFT JOIN activities ON activities.activity_id = club_transactions.club_transaction_activity_id").
		Select("activities.activity_name AS activity_name, COALESCE(SUM(club_transactions.club_transaction_amount),0) AS total").
		Group("activities.activity_name").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		label := "Cuota Social / Otros"
		if r.ActivityName != nil && *r.ActivityName != "" {
			label = *r.ActivityName
		}
		out = append(out, fiber.Map{
			"activity": label,
			"total":    helper.RoundMoney(r.Total),
		})
	}

	return helper.JsonOK(c, "", out)
}

// =============================
// GET /api/u/finance/reports/monthly-summary?from=&to=
// Ingreso & gasto per bulan untuk grafik evolución de caja.
// =============================
func (ctrl *ReportController) MonthlySummary(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.ClubTransactionModel{}).
		Where("club_transaction_club_id = ?", clubID)
	q, err = applyDateRange(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de fecha inválido. Use AAAA-MM-DD.")
	}

	type row struct {
		Month   string
		Income  float64
		Expense float64
	}
	var rows []row
	if err := q.
		Select(`to_char(club_transaction_date, 'YYYY-MM') AS month,
			COALESCE(SUM(club_transaction_amount) FILTER (WHERE club_transaction_type = 'income'), 0) AS income,
			COALESCE(SUM(club_transaction_amount) FILTER (WHERE club_transaction_type = 'expense'), 0) AS expense`).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, fiber.Map{
			"month":   r.Month,
			"income":  helper.RoundMoney(r.Income),
			"expense": helper.RoundMoney(r.Expense),
			"net":     helper.RoundMoney(r.Income - r.Expense),
		})
	}

	return helper.JsonOK(c, "", out)
}

// =============================
// GET /api/u/finance/reports/expense-by-category?from=&to=
// =============================
func (ctrl *ReportController) ExpenseByCategory(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.ClubTransactionModel{}).
		Where("club_transactions.club_transaction_club_id = ? AND club_transactions.club_transaction_type = ?",
			clubID, model.CategoryExpense)
	q, err = applyDateRange(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de fecha inválido. Use AAAA-MM-DD.")
	}

	type row struct {
		CategoryName *string
		Total        float64
	}
	var rows []row
	if err := q.
		Joins("LEFT JOIN categories ON categories.category_id = club_transactions.club_transaction_category_id").
		Select("categories.category_name AS category_name, COALESCE(SUM(club_transactions.club_transaction_amount),0) AS total").
		Group("categories.category_name").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		label := "Sin categoría"
		if r.CategoryName != nil && *r.CategoryName != "" {
			label = *r.CategoryName
		}
		out = append(out, fiber.Map{
			"category": label,
			"total":    helper.RoundMoney(r.Total),
		})
	}

	return helper.JsonOK(c, "", out)
}

// =============================
// GET /api/u/finance/reports/debtors?month=AAAA-MM
// Daftar socio dengan deuda belum lunas (morosos). Saldo per deuda
// dihitung neto pago parsial.
// =============================
func (ctrl *ReportController) Debtors(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	paid := ctrl.DB.Table("payments").
		Select("payment_debt_id, COALESCE(SUM(payment_amount),0) AS paid_total").
		Group("payment_debt_id")

	q := ctrl.DB.Table("debts").
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Joins("LEFT JOIN (?) AS paid ON paid.payment_debt_id = debts.debt_id", paid).
		Where("members.member_club_id = ? AND debts.debt_is_paid = FALSE", clubID)

	if monthStr := c.Query("month"); monthStr != "" {
		q = q.Where("to_char(debts.debt_month, 'YYYY-MM') = ?", monthStr)
	}

	var rows []service.DebtorDebtRow
	if err := q.
		Select(`members.member_id AS member_id,
			members.member_first_name AS first_name,
			members.member_last_name AS last_name,
			members.member_phone AS phone,
			debts.debt_total_amount AS debt_total,
			COALESCE(paid.paid_total, 0) AS paid_total`).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	summaries := service.BuildDebtorsSummary(rows)
	out := make([]fiber.Map, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, fiber.Map{
			"member_id":  s.MemberID,
			"first_name": s.FirstName,
			"last_name":  s.LastName,
			"phone":      s.Phone,
			"unpaid_sum": s.UnpaidSum,
			"debt_count": s.DebtCount,
		})
	}

	return helper.JsonOK(c, "", out)
}
