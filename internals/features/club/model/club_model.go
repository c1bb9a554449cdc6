package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClubModel struct {
	ClubID uuid.UUID `gorm:"column:club_id;type:uuid;default:gen_random_uuid();primaryKey" json:"club_id"`

	ClubName        string  `gorm:"column:club_name;type:text;not null;unique" json:"club_name"`
	ClubEmailDomain *string `gorm:"column:club_email_domain;type:text" json:"club_email_domain,omitempty"`

	// Cuota social base (boleh NULL: club tanpa cuota base)
	ClubBaseFee *float64 `gorm:"column:club_base_fee;type:numeric(10,2)" json:"club_base_fee,omitempty"`

	ClubIsActive bool `gorm:"column:club_is_active;not null;default:true" json:"club_is_active"`

	ClubCreatedAt time.Time      `gorm:"column:club_created_at;autoCreateTime" json:"club_created_at"`
	ClubUpdatedAt *time.Time     `gorm:"column:club_updated_at;autoUpdateTime" json:"club_updated_at,omitempty"`
	ClubDeletedAt gorm.DeletedAt `gorm:"column:club_deleted_at;index" json:"club_deleted_at,omitempty"`
}

func (ClubModel) TableName() string { return "clubs" }
