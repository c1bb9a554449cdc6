package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserClubID uuid.UUID `gorm:"column:user_club_id;type:uuid;not null;index:idx_users_club" json:"user_club_id"`

	UserEmail        string `gorm:"column:user_email;type:text;not null;unique" json:"user_email"`
	UserPasswordHash string `gorm:"column:user_password_hash;type:text;not null" json:"-"`

	// admin | tesorero | comision | profesor | socio
	UserRole string `gorm:"column:user_role;type:varchar(20);not null" json:"user_role"`

	UserIsActive            bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserForcePasswordChange bool `gorm:"column:user_force_password_change;not null;default:false" json:"user_force_password_change"`

	UserRecoveryEmail  *string    `gorm:"column:user_recovery_email;type:text" json:"user_recovery_email,omitempty"`
	UserResetTokenHash *string    `gorm:"column:user_reset_token_hash;type:text" json:"-"`
	UserResetExpiresAt *time.Time `gorm:"column:user_reset_expires_at" json:"-"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
