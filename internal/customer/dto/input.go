package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type CreateCustomerInput struct {
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	LoyaltyTier model.LoyaltyTier `json:"loyaltyTier"`
}

type UpdateCustomerInput struct {
	Name        *string            `json:"name,omitempty"`
	Phone       *string            `json:"phone,omitempty"`
	Email       *string            `json:"email,omitempty"`
	LoyaltyTier *model.LoyaltyTier `json:"loyaltyTier,omitempty"`
}
