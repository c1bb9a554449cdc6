// internals/features/billing/payments/service/payment_allocator.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	debtModel "clubmanager_backend/internals/features/billing/debts/model"
	paymentModel "clubmanager_backend/internals/features/billing/payments/model"
	finModel "clubmanager_backend/internals/features/finance/model"
	helper "clubmanager_backend/internals/helpers"
)

/* ==========================
   Pure allocation
========================== */

// AllocItem: proyeksi DebtItem yang dibutuhkan allocator.
type AllocItem struct {
	DebtItemID  uuid.UUID
	Description string
	Amount      float64
	ActivityID  *uuid.UUID
	Position    int
}

// Allocation: porsi pembayaran sekarang yang jatuh ke satu item.
type Allocation struct {
	Item   AllocItem
	Amount float64
}

// OrderForAllocation: partition dua bucket yang eksplisit — item tanpa
// aktivitas (cuota base / cargo manual) dulu, item aktivitas setelahnya;
// urutan insert dipertahankan di dalam masing-masing bucket.
func OrderForAllocation(items []AllocItem) []AllocItem {
	out := make([]AllocItem, 0, len(items))
	for _, it := range items {
		if it.ActivityID == nil {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if it.ActivityID != nil {
			out = append(out, it)
		}
	}
	return out
}

// BuildAllocationPlan mendistribusikan amount pembayaran SEKARANG ke item
// yang belum lunas, gaya waterfall. paidBefore = total pembayaran debt ini
// sebelum pembayaran sekarang. Mengembalikan alokasi per item + sisa yang
// tidak teralokasi (overpayment).
func BuildAllocationPlan(items []AllocItem, paidBefore, amount float64) (allocs []Allocation, unallocated float64) {
	remaining := helper.RoundMoney(amount)
	tracker := helper.RoundMoney(paidBefore)

	for _, it := range OrderForAllocation(items) {
		if remaining <= 0 {
			break
		}

		covered := tracker
		if covered < 0 {
			covered = 0
		}
		outstanding := helper.RoundMoney(it.Amount - covered)
		if outstanding <= 0 {
			// item sudah lunas dari pembayaran sebelumnya
			tracker = helper.RoundMoney(tracker - it.Amount)
			continue
		}

		alloc := remaining
		if outstanding < alloc {
			alloc = outstanding
		}
		if alloc > 0 {
			allocs = append(allocs, Allocation{Item: it, Amount: helper.RoundMoney(alloc)})
			remaining = helper.RoundMoney(remaining - alloc)
		}
		tracker = helper.RoundMoney(tracker - it.Amount)
	}

	return allocs, helper.RoundMoney(remaining)
}

/* ==========================
   Recorder (DB)
========================== */

type RecordPaymentInput struct {
	DebtID     uuid.UUID
	Amount     float64
	DateStr    string // YYYY-MM-DD
	Method     *string
	ReceiptURL *string
	UserID     *uuid.UUID // pencatat, masuk ke ledger
}

// RecordPayment menyimpan pembayaran atas satu debt, menghitung ulang
// status lunas, lalu menjalankan allocation pass: tiap porsi teralokasi
// di-mirror jadi ClubTransaction income berkategori. Satu transaksi DB
// untuk payment + debt + seluruh ledger row.
func RecordPayment(db *gorm.DB, clubID uuid.UUID, in RecordPaymentInput) (*paymentModel.PaymentModel, error) {
	if in.Amount <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "El monto del pago debe ser positivo.")
	}
	payDate, err := time.Parse("2006-01-02", in.DateStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Formato de fecha inválido. Use AAAA-MM-DD.")
	}
	amount := helper.RoundMoney(in.Amount)

	// debt harus milik tenant pemanggil (join lewat members)
	var debt debtModel.DebtModel
	if err := db.
		Select("debts.*").
		Joins("JOIN members ON members.member_id = debts.debt_member_id").
		Where("debts.debt_id = ? AND members.member_club_id = ?", in.DebtID, clubID).
		First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Deuda no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var items []debtModel.DebtItemModel
	if err := db.
		Where("debt_item_debt_id = ?", debt.DebtID).
		Order("debt_item_position ASC, debt_item_created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var paidBefore float64
	if err := db.Model(&paymentModel.PaymentModel{}).
		Where("payment_debt_id = ?", debt.DebtID).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&paidBefore).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	paidBefore = helper.RoundMoney(paidBefore)

	allocs, unallocated := BuildAllocationPlan(toAllocItems(items), paidBefore, amount)

	payment := paymentModel.PaymentModel{
		PaymentDebtID:            debt.DebtID,
		PaymentAmount:            amount,
		PaymentDate:              payDate,
		PaymentMethod:            in.Method,
		PaymentReceiptURL:        in.ReceiptURL,
		PaymentUnallocatedAmount: unallocated,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		// status lunas: total semua pembayaran (termasuk yang ini) >= total
		totalPaid := helper.RoundMoney(paidBefore + amount)
		debt.DebtIsPaid = helper.MoneyGTE(totalPaid, debt.DebtTotalAmount)
		if err := tx.Model(&debtModel.DebtModel{}).
			Where("debt_id = ?", debt.DebtID).
			Update("debt_is_paid", debt.DebtIsPaid).Error; err != nil {
			return err
		}

		// mirror tiap alokasi ke ledger kas club
		for _, a := range allocs {
			catName := finModel.CategorySocialFee
			if a.Item.ActivityID != nil {
				catName = finModel.CategoryActivityIncome
			}
			cat, err := getOrCreateCategory(tx, clubID, catName, finModel.CategoryIncome)
			if err != nil {
				return err
			}

			catID := cat.CategoryID
			entry := finModel.ClubTransactionModel{
				ClubTransactionClubID:      clubID,
				ClubTransactionDate:        payDate,
				ClubTransactionDescription: fmt.Sprintf("Pago cuota: %s", a.Item.Description),
				ClubTransactionAmount:      a.Amount,
				ClubTransactionType:        finModel.CategoryIncome,
				ClubTransactionCategoryID:  &catID,
				ClubTransactionActivityID:  a.Item.ActivityID,
				ClubTransactionUserID:      in.UserID,
				ClubTransactionReceiptURL:  in.ReceiptURL,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat pembayaran: "+err.Error())
	}

	return &payment, nil
}

func toAllocItems(items []debtModel.DebtItemModel) []AllocItem {
	out := make([]AllocItem, 0, len(items))
	for _, it := range items {
		out = append(out, AllocItem{
			DebtItemID:  it.DebtItemID,
			Description: it.DebtItemDescription,
			Amount:      it.DebtItemAmount,
			ActivityID:  it.DebtItemActivityID,
			Position:    it.DebtItemPosition,
		})
	}
	return out
}

// getOrCreateCategory: lookup by (club, name, type), create sekali kalau
// belum ada — idempotent, dipakai ulang oleh allocator tiap pembayaran.
func getOrCreateCategory(tx *gorm.DB, clubID uuid.UUID, name string, typ finModel.CategoryType) (*finModel.CategoryModel, error) {
	var cat finModel.CategoryModel
	err := tx.Where(
		"category_club_id = ? AND category_name = ? AND category_type = ?",
		clubID, name, typ,
	).First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat = finModel.CategoryModel{
		CategoryClubID: clubID,
		CategoryName:   name,
		CategoryType:   typ,
	}
	if err := tx.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}
