package dto

import (
	"time"

	"github.com/google/uuid"

	"clubmanager_backend/internals/features/billing/payments/model"
)

/* ==========================
   Request
========================== */

// PaymentCreateRequest: dikirim sebagai multipart form (field receipt
// opsional berisi file comprobante).
type PaymentCreateRequest struct {
	Amount float64 `json:"amount" form:"amount" validate:"required,gt=0"`
	Date   string  `json:"payment_date" form:"payment_date" validate:"required,datetime=2006-01-02"`
	Method *string `json:"method" form:"method" validate:"omitempty,max=50"`
}

// CheckoutRequest: pembayaran online sisa saldo debt via midtrans.
type CheckoutRequest struct {
	PayerName  string `json:"payer_name" validate:"required,min=1,max=100"`
	PayerEmail string `json:"payer_email" validate:"required,email"`
}

type CheckoutResponse struct {
	OrderID   string `json:"order_id"`
	SnapToken string `json:"snap_token"`
}

/* ==========================
   Response
========================== */

type PaymentResponse struct {
	PaymentID                uuid.UUID `json:"payment_id"`
	PaymentDebtID            uuid.UUID `json:"payment_debt_id"`
	PaymentAmount            float64   `json:"payment_amount"`
	PaymentDate              string    `json:"payment_date"` // AAAA-MM-DD
	PaymentMethod            *string   `json:"payment_method,omitempty"`
	PaymentReceiptURL        *string   `json:"payment_receipt_url,omitempty"`
	PaymentUnallocatedAmount float64   `json:"payment_unallocated_amount"`
	PaymentCreatedAt         time.Time `json:"payment_created_at"`
}

func FromModelPayment(m *model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:                m.PaymentID,
		PaymentDebtID:            m.PaymentDebtID,
		PaymentAmount:            m.PaymentAmount,
		PaymentDate:              m.PaymentDate.Format("2006-01-02"),
		PaymentMethod:            m.PaymentMethod,
		PaymentReceiptURL:        m.PaymentReceiptURL,
		PaymentUnallocatedAmount: m.PaymentUnallocatedAmount,
		PaymentCreatedAt:         m.PaymentCreatedAt,
	}
}

func FromModelPayments(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelPayment(&list[i]))
	}
	return out
}
