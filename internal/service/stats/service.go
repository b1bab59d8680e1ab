package stats

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/repository"
)

// Service derives the dashboard summary from the current appointment and
// patient sets.
type Service struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	now          func() time.Time
}

func NewService(appointments repository.AppointmentRepository, patients repository.PatientRepository) *Service {
	return &Service{
		appointments: appointments,
		patients:     patients,
		now:          time.Now,
	}
}

// Dashboard computes patient count, today's bookings, revenue from
// completed appointments this month and the all-time completed count.
func (s *Service) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := model.NewDate(now.Year(), now.Month(), now.Day())

	stats := &model.DashboardStats{
		TotalPatients:  len(patients),
		MonthlyRevenue: decimal.Zero,
	}

	for _, appointment := range appointments {
		if appointment.Date.Equal(today) {
			stats.TodayAppointments++
		}
		if appointment.Status != model.AppointmentStatusCompleted {
			continue
		}
		stats.CompletedTreatments++
		y, m, _ := appointment.Date.Time.Date()
		if y == now.Year() && m == now.Month() {
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(appointment.PendingBalance)
		}
	}

	return stats, nil
}
