package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentDebtID uuid.UUID `gorm:"column:payment_debt_id;type:uuid;not null;index:idx_payments_debt" json:"payment_debt_id"`

	PaymentAmount float64   `gorm:"column:payment_amount;type:numeric(10,2);not null" json:"payment_amount"`
	PaymentDate   time.Time `gorm:"column:payment_date;type:date;not null" json:"payment_date"`

	PaymentMethod     *string `gorm:"column:payment_method;type:text" json:"payment_method,omitempty"`
	PaymentReceiptURL *string `gorm:"column:payment_receipt_url;type:text" json:"payment_receipt_url,omitempty"`

	// sisa pembayaran yang tidak teralokasi ke item mana pun (overpayment).
	// Dicatat, tidak dikembalikan — lihat DESIGN.md.
	PaymentUnallocatedAmount float64 `gorm:"column:payment_unallocated_amount;type:numeric(10,2);not null;default:0" json:"payment_unallocated_amount"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string { return "payments" }

// PaymentGatewayEventModel: notifikasi mentah dari midtrans, disimpan
// apa adanya (JSONB) untuk audit webhook.
type PaymentGatewayEventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventOrderID string         `gorm:"column:event_order_id;type:text;not null;index:idx_payment_gateway_events_order" json:"event_order_id"`
	EventStatus  string         `gorm:"column:event_status;type:text;not null" json:"event_status"`
	EventPayload datatypes.JSON `gorm:"column:event_payload;type:jsonb;not null" json:"event_payload"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
}

func (PaymentGatewayEventModel) TableName() string { return "payment_gateway_events" }
