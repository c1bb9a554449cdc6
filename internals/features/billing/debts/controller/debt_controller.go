package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubmanager_backend/internals/features/billing/debts/dto"
	"clubmanager_backend/internals/features/billing/debts/model"
	debtService "clubmanager_backend/internals/features/billing/debts/service"
	paymentModel "clubmanager_backend/internals/features/billing/payments/model"
	helper "clubmanager_backend/internals/helpers"
)

type DebtController struct {
	DB *gorm.DB
}

func NewDebtController(db *gorm.DB) *DebtController {
	return &DebtController{DB: db}
}

var validate = validator.New()

// =============================
// POST /api/a/debts/generate — generate tagihan bulanan seluruh club
// =============================
func (ctrl *DebtController) GenerateDebts(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GenerateDebtRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := debtService.GenerateMonthlyDebt(ctrl.DB, clubID, req.Month)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	msg := fmt.Sprintf("Deuda generada con éxito para %d socios.", res.GeneratedCount)
	return helper.JsonCreated(c, msg, res)
}

// =============================
// POST /api/a/debts/charges — cargo manual
// =============================
func (ctrl *DebtController) CreateManualCharge(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ManualChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	debt, err := debtService.AppendManualCharge(ctrl.DB, clubID, debtService.ManualChargeInput{
		MemberID:    req.MemberID,
		MonthStr:    req.Month,
		Description: req.Description,
		Amount:      req.Amount,
		ActivityID:  req.ActivityID,
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Cargo agregado con éxito", dto.FromModelDebt(debt, 0))
}

// =============================
// GET /api/u/debts?month=AAAA-MM&unpaid=true&page=&per_page=
// =============================
func (ctrl *DebtController) GetDebts(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.DebtModel{}).
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Where("members.member_club_id = ?", clubID)

	if monthStr := c.Query("month"); monthStr != "" {
		month, err := debtService.ParseMonth(monthStr)
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusBadRequest, "Mes inválido")
		}
		q = q.Where("debts.debt_month = ?", month)
	}
	if c.Query("unpaid") == "true" {
		q = q.Where("debts.debt_is_paid = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var debts []model.DebtModel
	if err := q.Select("debts.*").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("debt_item_position ASC")
		}).
		Order("debts.debt_month DESC, debts.debt_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&debts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	paid := map[uuid.UUID]float64{}
	if len(debts) > 0 {
		ids := make([]uuid.UUID, 0, len(debts))
		for _, d := range debts {
			ids = append(ids, d.DebtID)
		}
		type row struct {
			DebtID uuid.UUID
			Total  float64
		}
		var rows []row
		if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
			Select("payment_debt_id AS debt_id, COALESCE(SUM(payment_amount),0) AS total").
			Where("payment_debt_id IN ?", ids).
			Group("payment_debt_id").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, r := range rows {
			paid[r.DebtID] = helper.RoundMoney(r.Total)
		}
	}

	out := make([]dto.DebtResponse, 0, len(debts))
	for i := range debts {
		out = append(out, dto.FromModelDebt(&debts[i], paid[debts[i].DebtID]))
	}

	return helper.JsonList(c, "", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// GET /api/u/debts/:id
// =============================
func (ctrl *DebtController) GetDebt(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}
	debtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var debt model.DebtModel
	err = ctrl.DB.
		Select("debts.*").
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Where("debts.debt_id = ? AND members.member_club_id = ?", debtID, clubID).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("debt_item_position ASC")
		}).
		First(&debt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Deuda no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var paidAmount float64
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_debt_id = ?", debt.DebtID).
		Select("COALESCE(SUM(payment_amount),0)").
		Scan(&paidAmount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromModelDebt(&debt, helper.RoundMoney(paidAmount)))
}
