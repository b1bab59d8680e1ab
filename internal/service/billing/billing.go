package billing

import (
	"github.com/shopspring/decimal"

	"github.com/bellitaspa/agenda-api/internal/model"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

// ComputeBalance derives an appointment's pending balance: the service
// price plus every selected add-on price, rounded half-up to two decimal
// places. Pure function; invoked at creation and on every selection edit
// so the stored balance is always consistent with the current selection.
func ComputeBalance(service *model.Service, addons []*model.Addon) (decimal.Decimal, error) {
	if service == nil {
		return decimal.Zero, apperrors.NewInvalidPrice("service", "service is missing")
	}
	if service.Price.IsNegative() {
		return decimal.Zero, apperrors.NewInvalidPrice("service "+service.Name, "price is negative")
	}

	total := service.Price
	for _, addon := range addons {
		if addon == nil {
			return decimal.Zero, apperrors.NewInvalidPrice("addon", "addon is missing")
		}
		if addon.Price.IsNegative() {
			return decimal.Zero, apperrors.NewInvalidPrice("addon "+addon.Name, "price is negative")
		}
		total = total.Add(addon.Price)
	}

	// Round is half away from zero, which is half-up for prices.
	return total.Round(2), nil
}
