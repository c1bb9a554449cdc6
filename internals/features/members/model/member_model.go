package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "clubmanager_backend/internals/features/activities/model"
)

// Tipe socio (lihat enum member_type di migrasi)
type MemberType string

const (
	MemberAdherente MemberType = "adherente"
	MemberDeportivo MemberType = "deportivo"
	MemberNA        MemberType = "na"
)

type MemberModel struct {
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`

	MemberClubID uuid.UUID `gorm:"column:member_club_id;type:uuid;not null;index:idx_members_club" json:"member_club_id"`

	MemberFirstName string  `gorm:"column:member_first_name;type:text;not null" json:"member_first_name"`
	MemberLastName  string  `gorm:"column:member_last_name;type:text;not null" json:"member_last_name"`
	MemberEmail     *string `gorm:"column:member_email;type:text" json:"member_email,omitempty"`
	MemberPhone     string  `gorm:"column:member_phone;type:text;not null" json:"member_phone"`
	MemberDNI       *string `gorm:"column:member_dni;type:text;index:idx_members_dni" json:"member_dni,omitempty"`
	MemberNumber    *string `gorm:"column:member_number;type:text" json:"member_number,omitempty"`

	MemberType MemberType `gorm:"column:member_type;type:varchar(12);not null;default:na" json:"member_type"`

	MemberBirthDate *time.Time `gorm:"column:member_birth_date;type:date" json:"member_birth_date,omitempty"`

	// soft-delete fungsional: member nonaktif tidak ikut generate tagihan
	MemberIsActive bool `gorm:"column:member_is_active;not null;default:true" json:"member_is_active"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`

	// enrollment aktivitas (join table member_activities)
	Activities []activityModel.ActivityModel `gorm:"many2many:member_activities;foreignKey:MemberID;joinForeignKey:member_id;References:ActivityID;joinReferences:activity_id" json:"activities,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
