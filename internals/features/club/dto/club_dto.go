package dto

import (
	"time"

	"github.com/google/uuid"

	"clubmanager_backend/internals/features/club/model"
)

/* ==========================
   Request
========================== */

// ClubUpdateRequest: partial update setting club (nil = tidak diubah).
type ClubUpdateRequest struct {
	ClubName        *string  `json:"club_name" validate:"omitempty,min=2,max=100"`
	ClubEmailDomain *string  `json:"club_email_domain" validate:"omitempty,fqdn"`
	ClubBaseFee     *float64 `json:"club_base_fee" validate:"omitempty,gte=0"`
}

// ApplyTo: hanya field non-nil yang dipakai.
func (r *ClubUpdateRequest) ApplyTo(m *model.ClubModel) {
	if r.ClubName != nil {
		m.ClubName = *r.ClubName
	}
	if r.ClubEmailDomain != nil {
		m.ClubEmailDomain = r.ClubEmailDomain
	}
	if r.ClubBaseFee != nil {
		m.ClubBaseFee = r.ClubBaseFee
	}
}

/* ==========================
   Response
========================== */

type ClubResponse struct {
	ClubID          uuid.UUID  `json:"club_id"`
	ClubName        string     `json:"club_name"`
	ClubEmailDomain *string    `json:"club_email_domain,omitempty"`
	ClubBaseFee     *float64   `json:"club_base_fee,omitempty"`
	ClubIsActive    bool       `json:"club_is_active"`
	ClubCreatedAt   time.Time  `json:"club_created_at"`
	ClubUpdatedAt   *time.Time `json:"club_updated_at,omitempty"`
}

func FromModelClub(m *model.ClubModel) ClubResponse {
	return ClubResponse{
		ClubID:          m.ClubID,
		ClubName:        m.ClubName,
		ClubEmailDomain: m.ClubEmailDomain,
		ClubBaseFee:     m.ClubBaseFee,
		ClubIsActive:    m.ClubIsActive,
		ClubCreatedAt:   m.ClubCreatedAt,
		ClubUpdatedAt:   m.ClubUpdatedAt,
	}
}
