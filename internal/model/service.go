package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a bookable offering with a base price for billing.
type Service struct {
	Base
	Name       string          `db:"name" json:"name"`
	Duration   int             `db:"duration" json:"duration"` // minutes
	Price      decimal.Decimal `db:"price" json:"price"`
	Treatments []Treatment     `db:"-" json:"treatments,omitempty"`
}

// Treatment is a technique associated with one or more services.
type Treatment struct {
	Base
	Name        string `db:"name" json:"name"`
	Duration    int    `db:"duration" json:"duration"` // minutes
	Description string `db:"description" json:"description,omitempty"`
}

type CreateServiceRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Duration     int             `json:"duration" validate:"required,gt=0"`
	Price        decimal.Decimal `json:"price"`
	TreatmentIDs []uuid.UUID     `json:"treatment_ids"`
}

type UpdateServiceRequest struct {
	Name         *string          `json:"name" validate:"omitempty,max=100"`
	Duration     *int             `json:"duration" validate:"omitempty,gt=0"`
	Price        *decimal.Decimal `json:"price"`
	TreatmentIDs *[]uuid.UUID     `json:"treatment_ids"`
}

type CreateTreatmentRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Description string `json:"description"`
}

type UpdateTreatmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Duration    *int    `json:"duration" validate:"omitempty,gt=0"`
	Description *string `json:"description"`
}
