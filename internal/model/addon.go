package model

import (
	"github.com/shopspring/decimal"
)

// Addon is an optional extra item priced independently of the service.
type Addon struct {
	Base
	Name  string          `db:"name" json:"name"`
	Price decimal.Decimal `db:"price" json:"price"`
}

type CreateAddonRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price"`
}

type UpdateAddonRequest struct {
	Name  *string          `json:"name" validate:"omitempty,max=100"`
	Price *decimal.Decimal `json:"price"`
}
