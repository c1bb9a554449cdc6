package model

import (
	"time"

	"github.com/google/uuid"
)

// DebtModel: kewajiban bulanan satu member. Satu row per (member, bulan) —
// dijaga unique index uq_debts_member_month.
type DebtModel struct {
	DebtID uuid.UUID `gorm:"column:debt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"debt_id"`

	DebtMemberID uuid.UUID `gorm:"column:debt_member_id;type:uuid;not null;uniqueIndex:uq_debts_member_month" json:"debt_member_id"`

	// selalu dinormalisasi ke tanggal 1 bulan tsb
	DebtMonth time.Time `gorm:"column:debt_month;type:date;not null;uniqueIndex:uq_debts_member_month" json:"debt_month"`

	// invariant: total == sum(items) saat dibuat; manual charge menambah keduanya
	DebtTotalAmount float64 `gorm:"column:debt_total_amount;type:numeric(10,2);not null" json:"debt_total_amount"`
	DebtIsPaid      bool    `gorm:"column:debt_is_paid;not null;default:false;index:idx_debts_is_paid" json:"debt_is_paid"`

	DebtCreatedAt time.Time  `gorm:"column:debt_created_at;autoCreateTime" json:"debt_created_at"`
	DebtUpdatedAt *time.Time `gorm:"column:debt_updated_at;autoUpdateTime" json:"debt_updated_at,omitempty"`

	Items []DebtItemModel `gorm:"foreignKey:DebtItemDebtID;references:DebtID" json:"items,omitempty"`
}

func (DebtModel) TableName() string { return "debts" }

// DebtItemModel: satu komponen tagihan (cuota base atau satu aktivitas).
// activity_id NULL ⇒ cuota social / cargo manual.
type DebtItemModel struct {
	DebtItemID uuid.UUID `gorm:"column:debt_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"debt_item_id"`

	DebtItemDebtID uuid.UUID `gorm:"column:debt_item_debt_id;type:uuid;not null;index:idx_debt_items_debt" json:"debt_item_debt_id"`

	DebtItemDescription string     `gorm:"column:debt_item_description;type:text;not null" json:"debt_item_description"`
	DebtItemAmount      float64    `gorm:"column:debt_item_amount;type:numeric(10,2);not null" json:"debt_item_amount"`
	DebtItemActivityID  *uuid.UUID `gorm:"column:debt_item_activity_id;type:uuid" json:"debt_item_activity_id,omitempty"`

	// urutan insert, dipakai allocator sebagai tie-break deterministik
	DebtItemPosition int `gorm:"column:debt_item_position;not null;default:0" json:"debt_item_position"`

	DebtItemCreatedAt time.Time `gorm:"column:debt_item_created_at;autoCreateTime" json:"debt_item_created_at"`
}

func (DebtItemModel) TableName() string { return "debt_items" }
