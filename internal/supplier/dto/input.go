package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type CreateSupplierInput struct {
	Name          string                 `json:"name"`
	ContactPerson string                 `json:"contactPerson"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email"`
	Category      model.SupplierCategory `json:"category"`
}

type UpdateSupplierInput struct {
	Name          *string                 `json:"name,omitempty"`
	ContactPerson *string                 `json:"contactPerson,omitempty"`
	Phone         *string                 `json:"phone,omitempty"`
	Email         *string                 `json:"email,omitempty"`
	Category      *model.SupplierCategory `json:"category,omitempty"`
}
