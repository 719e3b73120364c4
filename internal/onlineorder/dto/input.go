package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type UpdateStatusInput struct {
	Status *model.OnlineOrderStatus `json:"status,omitempty"`
}
