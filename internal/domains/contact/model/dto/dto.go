package dto

import (
	"packshift/internal/domains/contact/model"
	"packshift/shared/timezone"

	"github.com/google/uuid"
)

type ContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r *ContactRequest) ToModel() model.Contact {
	return model.Contact{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		CreatedAt: timezone.Now(),
	}
}
