package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubmanager_backend/internals/features/finance/dto"
	"clubmanager_backend/internals/features/finance/model"
	helper "clubmanager_backend/internals/helpers"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// =============================
// GET /api/u/finance/transactions?from=&to=&type=&category_id=&page=
// =============================
func (ctrl *TransactionController) GetTransactions(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.ClubTransactionModel{}).
		Where("club_transaction_club_id = ?", clubID)

	q, err = applyDateRange(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de fecha inválido. Use AAAA-MM-DD.")
	}
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		q = q.Where("club_transaction_type = ?", typ)
	}
	if catStr := strings.TrimSpace(c.Query("category_id")); catStr != "" {
		catID, err := uuid.Parse(catStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "category_id inválido")
		}
		q = q.Where("club_transaction_category_id = ?", catID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var txs []model.ClubTransactionModel
	if err := q.Order("club_transaction_date DESC, club_transaction_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&txs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.FromModelTransactions(txs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// POST /api/a/finance/transactions — movimiento manual (gasto / ingreso lain)
// =============================
func (ctrl *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.TransactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// kategori (kalau diisi) harus milik club & tipe-nya cocok
	if req.CategoryID != nil {
		var count int64
		if err := ctrl.DB.Model(&model.CategoryModel{}).
			Where("category_id = ? AND category_club_id = ? AND category_type = ?",
				req.CategoryID, clubID, req.Type).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Categoría inválida para este movimiento")
		}
	}

	userID, _ := helper.GetUserIDFromToken(c)
	var userPtr *uuid.UUID
	if userID != uuid.Nil {
		userPtr = &userID
	}

	tx, err := req.ToModel(clubID, userPtr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de fecha inválido. Use AAAA-MM-DD.")
	}
	tx.ClubTransactionAmount = helper.RoundMoney(tx.ClubTransactionAmount)

	if fh, err := c.FormFile("receipt"); err == nil && fh != nil {
		path, err := helper.SaveReceipt("receipts", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo guardar el comprobante: "+err.Error())
		}
		tx.ClubTransactionReceiptURL = &path
	}

	if err := ctrl.DB.Create(tx).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Movimiento registrado con éxito", dto.FromModelTransaction(tx))
}

// =============================
// DELETE /api/a/finance/transactions/:id
// Row hasil alokasi pago tetap bisa dihapus admin, tapi saldo debt
// TIDAK ikut berubah. Ledger dan debt memang dua buku terpisah.
// =============================
func (ctrl *TransactionController) DeleteTransaction(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}
	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("club_transaction_id = ? AND club_transaction_club_id = ?", txID, clubID).
		Delete(&model.ClubTransactionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Movimiento no encontrado")
	}

	return helper.JsonDeleted(c, "Movimiento eliminado con éxito", nil)
}

// =============================
// GET /api/u/finance/balance?from=&to=
// =============================
func (ctrl *TransactionController) GetBalance(c *fiber.Ctx) error {
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
		Type  string
		Total float64
	}
	var rows []row
	if err := q.Select("club_transaction_type AS type, COALESCE(SUM(club_transaction_amount),0) AS total").
		Group("club_transaction_type").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	income, expense := 0.0, 0.0
	for _, r := range rows {
		switch r.Type {
		case string(model.CategoryIncome):
			income = helper.RoundMoney(r.Total)
		case string(model.CategoryExpense):
			expense = helper.RoundMoney(r.Total)
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"income":  income,
		"expense": expense,
		"balance": helper.RoundMoney(income - expense),
	})
}

// applyDateRange membaca ?from= & ?to= (AAAA-MM-DD) dan memfilter
// club_transaction_date.
func applyDateRange(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, err
		}
		q = q.Where("club_transaction_date >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, err
		}
		q = q.Where("club_transaction_date <= ?", t)
	}
	return q, nil
}
