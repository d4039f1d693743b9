package response

import (
	"time"

	"hotel-ops/internal/domain/activity"
)

type ActivityResponse struct {
	ID            string     `json:"id"`
	ReservationID string     `json:"reservationId"`
	GuestID       string     `json:"guestId"`
	RoomID        string     `json:"roomId"`
	ActivityType  string     `json:"activityType"`
	Description   string     `json:"description"`
	Quantity      int        `json:"quantity"`
	UnitPrice     float64    `json:"unitPrice"`
	TotalPrice    float64    `json:"totalPrice"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func FromActivity(act activity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:            act.ID,
		ReservationID: act.ReservationID,
		GuestID:       act.GuestID,
		RoomID:        act.RoomID,
		ActivityType:  act.ActivityType.String(),
		Description:   act.Description,
		Quantity:      act.Quantity,
		UnitPrice:     act.UnitPrice,
		TotalPrice:    act.TotalPrice,
		Status:        act.Status.String(),
		CreatedAt:     act.CreatedAt,
		CompletedAt:   act.CompletedAt,
	}
}

func FromActivities(activities []activity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i, act := range activities {
		out[i] = FromActivity(act)
	}
	return out
}
