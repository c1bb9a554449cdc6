package dto

import (
	"time"

	"github.com/google/uuid"

	activityDto "clubmanager_backend/internals/features/activities/dto"
	"clubmanager_backend/internals/features/members/model"
)

/* ==========================
   Request
========================== */

type MemberCreateRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=100"`
	Phone     string  `json:"phone" validate:"required,min=5,max=30"`
	Email     *string `json:"email" validate:"omitempty,email"`
	DNI       *string `json:"dni" validate:"omitempty,max=20"`
	Number    *string `json:"number" validate:"omitempty,max=20"`
	Type      string  `json:"type" validate:"omitempty,oneof=adherente deportivo na"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *MemberCreateRequest) ToModel(clubID uuid.UUID) *model.MemberModel {
	m := &model.MemberModel{
		MemberClubID:    clubID,
		MemberFirstName: r.FirstName,
		MemberLastName:  r.LastName,
		MemberPhone:     r.Phone,
		MemberEmail:     r.Email,
		MemberDNI:       r.DNI,
		MemberNumber:    r.Number,
		MemberType:      model.MemberNA,
		MemberIsActive:  true,
	}
	if r.Type != "" {
		m.MemberType = model.MemberType(r.Type)
	}
	if r.BirthDate != nil {
		if t, err := time.Parse("2006-01-02", *r.BirthDate); err == nil {
			m.MemberBirthDate = &t
		}
	}
	return m
}

type MemberUpdateRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=5,max=30"`
	Email     *string `json:"email" validate:"omitempty,email"`
	DNI       *string `json:"dni" validate:"omitempty,max=20"`
	Number    *string `json:"number" validate:"omitempty,max=20"`
	Type      *string `json:"type" validate:"omitempty,oneof=adherente deportivo na"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"is_active"`
}

func (r *MemberUpdateRequest) ApplyTo(m *model.MemberModel) {
	if r.FirstName != nil {
		m.MemberFirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.MemberLastName = *r.LastName
	}
	if r.Phone != nil {
		m.MemberPhone = *r.Phone
	}
	if r.Email != nil {
		m.MemberEmail = r.Email
	}
	if r.DNI != nil {
		m.MemberDNI = r.DNI
	}
	if r.Number != nil {
		m.MemberNumber = r.Number
	}
	if r.Type != nil {
		m.MemberType = model.MemberType(*r.Type)
	}
	if r.BirthDate != nil {
		if t, err := time.Parse("2006-01-02", *r.BirthDate); err == nil {
			m.MemberBirthDate = &t
		}
	}
	if r.IsActive != nil {
		m.MemberIsActive = *r.IsActive
	}
}

// EnrollRequest: daftarkan member ke satu aktivitas.
type EnrollRequest struct {
	ActivityID uuid.UUID `json:"activity_id" validate:"required"`
}

/* ==========================
   Response
========================== */

type MemberResponse struct {
	MemberID        uuid.UUID                      `json:"member_id"`
	MemberFirstName string                         `json:"member_first_name"`
	MemberLastName  string                         `json:"member_last_name"`
	MemberEmail     *string                        `json:"member_email,omitempty"`
	MemberPhone     string                         `json:"member_phone"`
	MemberDNI       *string                        `json:"member_dni,omitempty"`
	MemberNumber    *string                        `json:"member_number,omitempty"`
	MemberType      string                         `json:"member_type"`
	MemberBirthDate *time.Time                     `json:"member_birth_date,omitempty"`
	MemberIsActive  bool                           `json:"member_is_active"`
	MemberCreatedAt time.Time                      `json:"member_created_at"`
	Activities      []activityDto.ActivityResponse `json:"activities,omitempty"`
}

func FromModelMember(m *model.MemberModel) MemberResponse {
	resp := MemberResponse{
		MemberID:        m.MemberID,
		MemberFirstName: m.MemberFirstName,
		MemberLastName:  m.MemberLastName,
		MemberEmail:     m.MemberEmail,
		MemberPhone:     m.MemberPhone,
		MemberDNI:       m.MemberDNI,
		MemberNumber:    m.MemberNumber,
		MemberType:      string(m.MemberType),
		MemberBirthDate: m.MemberBirthDate,
		MemberIsActive:  m.MemberIsActive,
		MemberCreatedAt: m.MemberCreatedAt,
	}
	for i := range m.Activities {
		resp.Activities = append(resp.Activities, activityDto.FromModelActivity(&m.Activities[i]))
	}
	return resp
}

func FromModelMembers(list []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelMember(&list[i]))
	}
	return out
}
