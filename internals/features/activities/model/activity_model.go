package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityModel struct {
	ActivityID uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`

	ActivityClubID uuid.UUID `gorm:"column:activity_club_id;type:uuid;not null;index:idx_activities_club" json:"activity_club_id"`

	ActivityName        string  `gorm:"column:activity_name;type:text;not null" json:"activity_name"`
	ActivityMonthlyCost float64 `gorm:"column:activity_monthly_cost;type:numeric(10,2);not null" json:"activity_monthly_cost"`

	ActivityCreatedAt time.Time      `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt *time.Time     `gorm:"column:activity_updated_at;autoUpdateTime" json:"activity_updated_at,omitempty"`
	ActivityDeletedAt gorm.DeletedAt `gorm:"column:activity_deleted_at;index" json:"activity_deleted_at,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }
