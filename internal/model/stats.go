package model

import (
	"github.com/shopspring/decimal"
)

// DashboardStats summarizes the current book of business for the
// presentation layer.
type DashboardStats struct {
	TotalPatients       int             `json:"total_patients"`
	TodayAppointments   int             `json:"today_appointments"`
	MonthlyRevenue      decimal.Decimal `json:"monthly_revenue"`
	CompletedTreatments int             `json:"completed_treatments"`
}
