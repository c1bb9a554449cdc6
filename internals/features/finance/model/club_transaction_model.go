package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubTransactionModel: satu entry kas club (income/expense).
// Row hasil alokasi pembayaran bersifat append-only — tidak pernah diubah.
type ClubTransactionModel struct {
	ClubTransactionID uuid.UUID `gorm:"column:club_transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"club_transaction_id"`

	ClubTransactionClubID uuid.UUID `gorm:"column:club_transaction_club_id;type:uuid;not null;index:idx_club_transactions_club_date" json:"club_transaction_club_id"`

	ClubTransactionDate        time.Time    `gorm:"column:club_transaction_date;type:date;not null;index:idx_club_transactions_club_date" json:"club_transaction_date"`
	ClubTransactionDescription string       `gorm:"column:club_transaction_description;type:text;not null" json:"club_transaction_description"`
	ClubTransactionAmount      float64      `gorm:"column:club_transaction_amount;type:numeric(10,2);not null" json:"club_transaction_amount"`
	ClubTransactionType        CategoryType `gorm:"column:club_transaction_type;type:varchar(10);not null;index:idx_club_transactions_type" json:"club_transaction_type"`

	ClubTransactionCategoryID *uuid.UUID `gorm:"column:club_transaction_category_id;type:uuid" json:"club_transaction_category_id,omitempty"`
	ClubTransactionActivityID *uuid.UUID `gorm:"column:club_transaction_activity_id;type:uuid" json:"club_transaction_activity_id,omitempty"`
	ClubTransactionUserID     *uuid.UUID `gorm:"column:club_transaction_user_id;type:uuid" json:"club_transaction_user_id,omitempty"`

	ClubTransactionReceiptURL *string `gorm:"column:club_transaction_receipt_url;type:text" json:"club_transaction_receipt_url,omitempty"`

	ClubTransactionCreatedAt time.Time `gorm:"column:club_transaction_created_at;autoCreateTime" json:"club_transaction_created_at"`
}

func (ClubTransactionModel) TableName() string { return "club_transactions" }
