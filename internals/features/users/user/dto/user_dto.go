package dto

import (
	"time"

	"github.com/google/uuid"

	"clubmanager_backend/internals/features/users/user/model"
)

/* ==========================
   Request
========================== */

type UserCreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin tesorero comision profesor socio"`
}

// ToModel: password di-hash oleh service, bukan di sini.
func (r *UserCreateRequest) ToModel(clubID uuid.UUID, passwordHash string) *model.UserModel {
	return &model.UserModel{
		UserClubID:       clubID,
		UserEmail:        r.Email,
		UserPasswordHash: passwordHash,
		UserRole:         r.Role,
		UserIsActive:     true,
	}
}

type UserUpdateRequest struct {
	Role          *string `json:"role" validate:"omitempty,oneof=admin tesorero comision profesor socio"`
	IsActive      *bool   `json:"is_active"`
	RecoveryEmail *string `json:"recovery_email" validate:"omitempty,email"`
}

func (r *UserUpdateRequest) ApplyTo(m *model.UserModel) {
	if r.Role != nil {
		m.UserRole = *r.Role
	}
	if r.IsActive != nil {
		m.UserIsActive = *r.IsActive
	}
	if r.RecoveryEmail != nil {
		m.UserRecoveryEmail = r.RecoveryEmail
	}
}

/* ==========================
   Response
========================== */

type UserResponse struct {
	UserID              uuid.UUID  `json:"user_id"`
	UserEmail           string     `json:"user_email"`
	UserRole            string     `json:"user_role"`
	UserIsActive        bool       `json:"user_is_active"`
	ForcePasswordChange bool       `json:"force_password_change"`
	UserRecoveryEmail   *string    `json:"user_recovery_email,omitempty"`
	UserCreatedAt       time.Time  `json:"user_created_at"`
	UserUpdatedAt       *time.Time `json:"user_updated_at,omitempty"`
}

func FromModelUser(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:              m.UserID,
		UserEmail:           m.UserEmail,
		UserRole:            m.UserRole,
		UserIsActive:        m.UserIsActive,
		ForcePasswordChange: m.UserForcePasswordChange,
		UserRecoveryEmail:   m.UserRecoveryEmail,
		UserCreatedAt:       m.UserCreatedAt,
		UserUpdatedAt:       m.UserUpdatedAt,
	}
}

func FromModelUsers(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelUser(&list[i]))
	}
	return out
}
