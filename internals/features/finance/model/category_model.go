package model

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Nama kategori ledger yang dibuat otomatis oleh payment allocator
// (get-or-create per club). Label mengikuti bahasa domain club.
const (
	CategorySocialFee      = "Cuota Social"
	CategoryActivityIncome = "Ingreso por Actividad"
)

type CategoryModel struct {
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`

	CategoryClubID uuid.UUID `gorm:"column:category_club_id;type:uuid;not null;uniqueIndex:uq_categories_club_name_type" json:"category_club_id"`

	CategoryName string       `gorm:"column:category_name;type:text;not null;uniqueIndex:uq_categories_club_name_type" json:"category_name"`
	CategoryType CategoryType `gorm:"column:category_type;type:varchar(10);not null;uniqueIndex:uq_categories_club_name_type" json:"category_type"`

	CategoryCreatedAt time.Time  `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt *time.Time `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at,omitempty"`
}

func (CategoryModel) TableName() string { return "categories" }
