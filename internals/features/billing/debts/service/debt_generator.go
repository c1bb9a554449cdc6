// internals/features/billing/debts/service/debt_generator.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	activityModel "clubmanager_backend/internals/features/activities/model"
	debtModel "clubmanager_backend/internals/features/billing/debts/model"
	clubModel "clubmanager_backend/internals/features/club/model"
	memberModel "clubmanager_backend/internals/features/members/model"
	helper "clubmanager_backend/internals/helpers"
)

const pgUniqueViolation = "23505"

/* ==========================
   Pure planning
========================== */

// ChargeInput: snapshot data yang dibutuhkan untuk menghitung tagihan satu
// member — tanpa akses DB, supaya gampang dites.
type ChargeInput struct {
	MemberID   uuid.UUID
	BaseFee    float64 // 0 ⇒ club tanpa cuota base
	Activities []ActivityFee
}

type ActivityFee struct {
	ActivityID  uuid.UUID
	Name        string
	MonthlyCost float64
}

type DebtItemPlan struct {
	Description string
	Amount      float64
	ActivityID  *uuid.UUID
	Position    int
}

type DebtPlan struct {
	MemberID uuid.UUID
	Items    []DebtItemPlan
	Total    float64
}

// BuildDebtPlan menyusun line item tagihan bulanan satu member:
// cuota base dulu (kalau > 0), lalu satu item per aktivitas sesuai urutan
// enrollment. ok=false kalau total 0 — member tsb dilewati tanpa Debt.
func BuildDebtPlan(in ChargeInput) (plan DebtPlan, ok bool) {
	plan.MemberID = in.MemberID

	pos := 0
	if in.BaseFee > 0 {
		plan.Items = append(plan.Items, DebtItemPlan{
			Description: "Cuota Social",
			Amount:      helper.RoundMoney(in.BaseFee),
			Position:    pos,
		})
		pos++
	}
	for _, act := range in.Activities {
		actID := act.ActivityID
		plan.Items = append(plan.Items, DebtItemPlan{
			Description: fmt.Sprintf("Actividad: %s", act.Name),
			Amount:      helper.RoundMoney(act.MonthlyCost),
			ActivityID:  &actID,
			Position:    pos,
		})
		pos++
	}

	for _, it := range plan.Items {
		plan.Total += it.Amount
	}
	plan.Total = helper.RoundMoney(plan.Total)

	return plan, plan.Total > 0
}

// MonthlyPlan: hasil keputusan satu batch generate.
type MonthlyPlan struct {
	Plans             []DebtPlan
	SkippedExisting   int
	SkippedZeroCharge int
}

// PlanMonthlyDebts memutuskan member mana yang dapat tagihan baru bulan
// ini: member yang sudah ada di `existing` dilewati (re-run tidak boleh
// menggandakan tagihan), member tanpa cargo juga dilewati.
func PlanMonthlyDebts(inputs []ChargeInput, existing map[uuid.UUID]struct{}) MonthlyPlan {
	var out MonthlyPlan
	for _, in := range inputs {
		if _, ok := existing[in.MemberID]; ok {
			out.SkippedExisting++
			continue
		}
		plan, ok := BuildDebtPlan(in)
		if !ok {
			out.SkippedZeroCharge++
			continue
		}
		out.Plans = append(out.Plans, plan)
	}
	return out
}

// ParseMonth menormalisasi "YYYY-MM" ke tanggal 1 bulan tsb (UTC).
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Formato de mes inválido. Use AAAA-MM.")
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

/* ==========================
   Generator (DB)
========================== */

type GenerateResult struct {
	GeneratedCount    int `json:"generated_count"`
	SkippedExisting   int `json:"skipped_existing"`
	SkippedZeroCharge int `json:"skipped_zero_charge"`
}

// GenerateMonthlyDebt membuat Debt + DebtItems untuk semua member aktif
// club yang belum punya tagihan di bulan target. Idempotent: re-run tidak
// menggandakan tagihan. Seluruh insert terjadi dalam satu transaksi.
func GenerateMonthlyDebt(db *gorm.DB, clubID uuid.UUID, monthStr string) (GenerateResult, error) {
	var res GenerateResult

	month, err := ParseMonth(monthStr)
	if err != nil {
		return res, err
	}

	var club clubModel.ClubModel
	if err := db.Where("club_id = ?", clubID).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fiber.NewError(fiber.StatusNotFound, "Club no encontrado")
		}
		return res, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	baseFee := 0.0
	if club.ClubBaseFee != nil {
		baseFee = *club.ClubBaseFee
	}

	// prefetch member aktif + enrollment-nya sekali jalan
	var members []memberModel.MemberModel
	if err := db.Preload("Activities", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("activities.activity_created_at ASC")
	}).
		Where("member_club_id = ? AND member_is_active = TRUE", clubID).
		Order("member_created_at ASC").
		Find(&members).Error; err != nil {
		return res, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(members) == 0 {
		return res, nil
	}

	// tagihan yang sudah ada di bulan target (idempotency check)
	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.MemberID)
	}
	var existing []uuid.UUID
	if err := db.Model(&debtModel.DebtModel{}).
		Where("debt_member_id IN ? AND debt_month = ?", memberIDs, month).
		Pluck("debt_member_id", &existing).Error; err != nil {
		return res, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	hasDebt := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		hasDebt[id] = struct{}{}
	}

	inputs := make([]ChargeInput, 0, len(members))
	for _, m := range members {
		inputs = append(inputs, ChargeInput{
			MemberID:   m.MemberID,
			BaseFee:    baseFee,
			Activities: activityFees(m.Activities),
		})
	}
	mp := PlanMonthlyDebts(inputs, hasDebt)
	res.SkippedExisting = mp.SkippedExisting
	res.SkippedZeroCharge = mp.SkippedZeroCharge

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, plan := range mp.Plans {
			// savepoint per member: 23505 karena race generate lain
			// tidak boleh membatalkan seluruh batch
			err := tx.Transaction(func(tx2 *gorm.DB) error {
				debt := debtModel.DebtModel{
					DebtMemberID:    plan.MemberID,
					DebtMonth:       month,
					DebtTotalAmount: plan.Total,
					DebtIsPaid:      false,
				}
				if err := tx2.Create(&debt).Error; err != nil {
					return err
				}
				for _, it := range plan.Items {
					item := debtModel.DebtItemModel{
						DebtItemDebtID:      debt.DebtID,
						DebtItemDescription: it.Description,
						DebtItemAmount:      it.Amount,
						DebtItemActivityID:  it.ActivityID,
						DebtItemPosition:    it.Position,
					}
					if err := tx2.Create(&item).Error; err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				if isUniqueViolation(err) {
					res.SkippedExisting++
					continue
				}
				return err
			}
			res.GeneratedCount++
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return GenerateResult{}, fe
		}
		return GenerateResult{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal generate tagihan: "+err.Error())
	}

	return res, nil
}

func activityFees(list []activityModel.ActivityModel) []ActivityFee {
	out := make([]ActivityFee, 0, len(list))
	for _, a := range list {
		out = append(out, ActivityFee{
			ActivityID:  a.ActivityID,
			Name:        a.ActivityName,
			MonthlyCost: a.ActivityMonthlyCost,
		})
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
