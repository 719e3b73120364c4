package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type CreateStaffInput struct {
	Name  string          `json:"name"`
	Role  model.StaffRole `json:"role"`
	Email string          `json:"email"`
	Phone string          `json:"phone"`
}

type UpdateStaffInput struct {
	Name   *string            `json:"name,omitempty"`
	Role   *model.StaffRole   `json:"role,omitempty"`
	Email  *string            `json:"email,omitempty"`
	Phone  *string            `json:"phone,omitempty"`
	Status *model.StaffStatus `json:"status,omitempty"`
}
