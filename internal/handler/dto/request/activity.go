package request

import (
	"hotel-ops/internal/domain/activity"
	"hotel-ops/internal/usecase/commands"
)

type CreateActivityRequest struct {
	ReservationID string  `json:"reservationId" binding:"required"`
	ActivityType  string  `json:"activityType" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	UnitPrice     float64 `json:"unitPrice" binding:"min=0"`
}

func (r CreateActivityRequest) ToParams() commands.CreateActivityParams {
	return commands.CreateActivityParams{
		ReservationID: r.ReservationID,
		ActivityType:  activity.Type(r.ActivityType),
		Description:   r.Description,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
	}
}

type UpdateActivityStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
