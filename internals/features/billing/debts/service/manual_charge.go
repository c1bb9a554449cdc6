package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "clubmanager_backend/internals/features/activities/model"
	debtModel "clubmanager_backend/internals/features/billing/debts/model"
	memberModel "clubmanager_backend/internals/features/members/model"
	helper "clubmanager_backend/internals/helpers"
)

type ManualChargeInput struct {
	MemberID    uuid.UUID
	MonthStr    string // AAAA-MM
	Description string
	Amount      float64
	ActivityID  *uuid.UUID // opsional: cargo terkait satu aktivitas
}

// AppendManualCharge menambah cargo manual (multa, evento, dsb.) ke debt
// member di bulan target. Kalau debt-nya belum ada, dibuat dulu. Total debt
// naik sebesar cargo dan status lunas dihitung ulang (pasti false karena
// total bertambah tanpa pago baru).
func AppendManualCharge(db *gorm.DB, clubID uuid.UUID, in ManualChargeInput) (*debtModel.DebtModel, error) {
	if in.Amount <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "El monto del cargo debe ser positivo.")
	}
	month, err := ParseMonth(in.MonthStr)
	if err != nil {
		return nil, err
	}
	amount := helper.RoundMoney(in.Amount)

	// member harus milik tenant pemanggil
	var member memberModel.MemberModel
	err = db.Where("member_id = ? AND member_club_id = ?", in.MemberID, clubID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Socio no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if in.ActivityID != nil {
		var count int64
		if err := db.Model(&activityModel.ActivityModel{}).
			Where("activity_id = ? AND activity_club_id = ?", in.ActivityID, clubID).
			Count(&count).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if count == 0 {
			return nil, fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
		}
	}

	var debt debtModel.DebtModel
	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("debt_member_id = ? AND debt_month = ?", in.MemberID, month).
			First(&debt).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			debt = debtModel.DebtModel{
				DebtMemberID:    in.MemberID,
				DebtMonth:       month,
				DebtTotalAmount: 0,
				DebtIsPaid:      false,
			}
			if err := tx.Create(&debt).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		var maxPos int
		if err := tx.Model(&debtModel.DebtItemModel{}).
			Where("debt_item_debt_id = ?", debt.DebtID).
			Select("COALESCE(MAX(debt_item_position), -1)").
			Scan(&maxPos).Error; err != nil {
			return err
		}

		item := debtModel.DebtItemModel{
			DebtItemDebtID:      debt.DebtID,
			DebtItemDescription: in.Description,
			DebtItemAmount:      amount,
			DebtItemActivityID:  in.ActivityID,
			DebtItemPosition:    maxPos + 1,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		debt.DebtTotalAmount = helper.RoundMoney(debt.DebtTotalAmount + amount)
		debt.DebtIsPaid = false
		return tx.Model(&debtModel.DebtModel{}).
			Where("debt_id = ?", debt.DebtID).
			Updates(map[string]any{
				"debt_total_amount": debt.DebtTotalAmount,
				"debt_is_paid":      false,
			}).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah cargo: "+err.Error())
	}

	return &debt, nil
}
