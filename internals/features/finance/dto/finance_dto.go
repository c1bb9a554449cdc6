package dto

import (
	"time"

	"github.com/google/uuid"

	"clubmanager_backend/internals/features/finance/model"
)

/* ==========================
   Category
========================== */

type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required,oneof=income expense"`
}

func (r *CategoryCreateRequest) ToModel(clubID uuid.UUID) *model.CategoryModel {
	return &model.CategoryModel{
		CategoryClubID: clubID,
		CategoryName:   r.Name,
		CategoryType:   model.CategoryType(r.Type),
	}
}

type CategoryUpdateRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

func (r *CategoryUpdateRequest) ApplyTo(m *model.CategoryModel) {
	if r.Name != nil {
		m.CategoryName = *r.Name
	}
}

type CategoryResponse struct {
	CategoryID        uuid.UUID `json:"category_id"`
	CategoryName      string    `json:"category_name"`
	CategoryType      string    `json:"category_type"`
	CategoryCreatedAt time.Time `json:"category_created_at"`
}

func FromModelCategory(m *model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:        m.CategoryID,
		CategoryName:      m.CategoryName,
		CategoryType:      string(m.CategoryType),
		CategoryCreatedAt: m.CategoryCreatedAt,
	}
}

func FromModelCategories(list []model.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelCategory(&list[i]))
	}
	return out
}

/* ==========================
   Club transaction
========================== */

type TransactionCreateRequest struct {
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
	Description string     `json:"description" validate:"required,min=1,max=200"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Type        string     `json:"type" validate:"required,oneof=income expense"`
	CategoryID  *uuid.UUID `json:"category_id"`
	ActivityID  *uuid.UUID `json:"activity_id"`
}

func (r *TransactionCreateRequest) ToModel(clubID uuid.UUID, userID *uuid.UUID) (*model.ClubTransactionModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.ClubTransactionModel{
		ClubTransactionClubID:      clubID,
		ClubTransactionDate:        date,
		ClubTransactionDescription: r.Description,
		ClubTransactionAmount:      r.Amount,
		ClubTransactionType:        model.CategoryType(r.Type),
		ClubTransactionCategoryID:  r.CategoryID,
		ClubTransactionActivityID:  r.ActivityID,
		ClubTransactionUserID:      userID,
	}, nil
}

type TransactionResponse struct {
	ClubTransactionID          uuid.UUID  `json:"club_transaction_id"`
	ClubTransactionDate        string     `json:"club_transaction_date"` // AAAA-MM-DD
	ClubTransactionDescription string     `json:"club_transaction_description"`
	ClubTransactionAmount      float64    `json:"club_transaction_amount"`
	ClubTransactionType        string     `json:"club_transaction_type"`
	ClubTransactionCategoryID  *uuid.UUID `json:"club_transaction_category_id,omitempty"`
	ClubTransactionActivityID  *uuid.UUID `json:"club_transaction_activity_id,omitempty"`
	ClubTransactionReceiptURL  *string    `json:"club_transaction_receipt_url,omitempty"`
	ClubTransactionCreatedAt   time.Time  `json:"club_transaction_created_at"`
}

func FromModelTransaction(m *model.ClubTransactionModel) TransactionResponse {
	return TransactionResponse{
		ClubTransactionID:          m.ClubTransactionID,
		ClubTransactionDate:        m.ClubTransactionDate.Format("2006-01-02"),
		ClubTransactionDescription: m.ClubTransactionDescription,
		ClubTransactionAmount:      m.ClubTransactionAmount,
		ClubTransactionType:        string(m.ClubTransactionType),
		ClubTransactionCategoryID:  m.ClubTransactionCategoryID,
		ClubTransactionActivityID:  m.ClubTransactionActivityID,
		ClubTransactionReceiptURL:  m.ClubTransactionReceiptURL,
		ClubTransactionCreatedAt:   m.ClubTransactionCreatedAt,
	}
}

func FromModelTransactions(list []model.ClubTransactionModel) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelTransaction(&list[i]))
	}
	return out
}
