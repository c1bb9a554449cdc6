package dto

import (
	"time"

	"github.com/google/uuid"

	"clubmanager_backend/internals/features/billing/debts/model"
)

/* ==========================
   Request
========================== */

// GenerateDebtRequest: bulan target format AAAA-MM.
type GenerateDebtRequest struct {
	Month string `json:"month" validate:"required,len=7"`
}

// ManualChargeRequest: cargo manual di luar siklus bulanan (multa, evento).
// Kalau member belum punya debt di bulan tsb, debt baru dibuat.
type ManualChargeRequest struct {
	MemberID    uuid.UUID  `json:"member_id" validate:"required"`
	Month       string     `json:"month" validate:"required,len=7"`
	Description string     `json:"description" validate:"required,min=1,max=200"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	ActivityID  *uuid.UUID `json:"activity_id"`
}

/* ==========================
   Response
========================== */

type DebtItemResponse struct {
	DebtItemID          uuid.UUID  `json:"debt_item_id"`
	DebtItemDescription string     `json:"debt_item_description"`
	DebtItemAmount      float64    `json:"debt_item_amount"`
	DebtItemActivityID  *uuid.UUID `json:"debt_item_activity_id,omitempty"`
	DebtItemPosition    int        `json:"debt_item_position"`
}

type DebtResponse struct {
	DebtID          uuid.UUID          `json:"debt_id"`
	DebtMemberID    uuid.UUID          `json:"debt_member_id"`
	DebtMonth       string             `json:"debt_month"` // AAAA-MM
	DebtTotalAmount float64            `json:"debt_total_amount"`
	DebtIsPaid      bool               `json:"debt_is_paid"`
	DebtPaidAmount  float64            `json:"debt_paid_amount"`
	DebtCreatedAt   time.Time          `json:"debt_created_at"`
	Items           []DebtItemResponse `json:"items,omitempty"`
}

func FromModelDebt(m *model.DebtModel, paidAmount float64) DebtResponse {
	resp := DebtResponse{
		DebtID:          m.DebtID,
		DebtMemberID:    m.DebtMemberID,
		DebtMonth:       m.DebtMonth.Format("2006-01"),
		DebtTotalAmount: m.DebtTotalAmount,
		DebtIsPaid:      m.DebtIsPaid,
		DebtPaidAmount:  paidAmount,
		DebtCreatedAt:   m.DebtCreatedAt,
	}
	for _, it := range m.Items {
		resp.Items = append(resp.Items, DebtItemResponse{
			DebtItemID:          it.DebtItemID,
			DebtItemDescription: it.DebtItemDescription,
			DebtItemAmount:      it.DebtItemAmount,
			DebtItemActivityID:  it.DebtItemActivityID,
			DebtItemPosition:    it.DebtItemPosition,
		})
	}
	return resp
}
