package dto

import (
	"time"

	"github.com/google/uuid"

	"clubmanager_backend/internals/features/activities/model"
)

type ActivityCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	MonthlyCost float64 `json:"monthly_cost" validate:"gte=0"`
}

func (r *ActivityCreateRequest) ToModel(clubID uuid.UUID) *model.ActivityModel {
	return &model.ActivityModel{
		ActivityClubID:      clubID,
		ActivityName:        r.Name,
		ActivityMonthlyCost: r.MonthlyCost,
	}
}

type ActivityUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	MonthlyCost *float64 `json:"monthly_cost" validate:"omitempty,gte=0"`
}

func (r *ActivityUpdateRequest) ApplyTo(m *model.ActivityModel) {
	if r.Name != nil {
		m.ActivityName = *r.Name
	}
	if r.MonthlyCost != nil {
		m.ActivityMonthlyCost = *r.MonthlyCost
	}
}

type ActivityResponse struct {
	ActivityID          uuid.UUID `json:"activity_id"`
	ActivityName        string    `json:"activity_name"`
	ActivityMonthlyCost float64   `json:"activity_monthly_cost"`
	ActivityCreatedAt   time.Time `json:"activity_created_at"`
}

func FromModelActivity(m *model.ActivityModel) ActivityResponse {
	return ActivityResponse{
		ActivityID:          m.ActivityID,
		ActivityName:        m.ActivityName,
		ActivityMonthlyCost: m.ActivityMonthlyCost,
		ActivityCreatedAt:   m.ActivityCreatedAt,
	}
}

func FromModelActivities(list []model.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelActivity(&list[i]))
	}
	return out
}
