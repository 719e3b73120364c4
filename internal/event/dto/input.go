package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type CreateEventInput struct {
	Title       string          `json:"title"`
	Type        model.EventType `json:"type"`
	Date        *int64          `json:"date"`
	MaxCapacity *int            `json:"maxCapacity"`
}

type UpdateEventInput struct {
	Title       *string          `json:"title,omitempty"`
	Type        *model.EventType `json:"type,omitempty"`
	Date        *int64           `json:"date,omitempty"`
	Attendees   *int             `json:"attendees,omitempty"`
	MaxCapacity *int             `json:"maxCapacity,omitempty"`
}
