package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/gomail.v2"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/repository"
	"github.com/bellitaspa/agenda-api/internal/service/catalog"
	"github.com/bellitaspa/agenda-api/pkg/logger"
)

// SMTPConfig carries the mail relay credentials. Reminders stay disabled
// when Host is empty.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// Service emails patients with a pending appointment for the current day.
// The job runs daily at the configured cron schedule.
type Service struct {
	appointments repository.AppointmentRepository
	catalog      *catalog.Service
	cfg          SMTPConfig
	schedule     string
	cron         *cron.Cron
	logger       *logger.Logger
	send         func(m *gomail.Message) error
}

func NewService(
	appointments repository.AppointmentRepository,
	catalogSvc *catalog.Service,
	cfg SMTPConfig,
	schedule string,
	log *logger.Logger,
) *Service {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &Service{
		appointments: appointments,
		catalog:      catalogSvc,
		cfg:          cfg,
		schedule:     schedule,
		cron:         cron.New(),
		logger:       log,
		send:         func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// Start registers the daily job. No-op when SMTP is not configured.
func (s *Service) Start() error {
	if !s.cfg.Enabled() {
		s.logger.Info("reminder scheduler disabled: no SMTP host configured")
		return nil
	}
	if _, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.SendDailyReminders(context.Background()); err != nil {
			s.logger.Error(err, "failed to send daily reminders")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.cron.Start()
	s.logger.Info("reminder scheduler started", "schedule", s.schedule)
	return nil
}

func (s *Service) Stop() {
	s.cron.Stop()
}

// SendDailyReminders mails every patient holding a PEND appointment today.
func (s *Service) SendDailyReminders(ctx context.Context) error {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}

	now := time.Now()
	today := model.NewDate(now.Year(), now.Month(), now.Day())

	sent := 0
	for _, appointment := range appointments {
		if appointment.Status != model.AppointmentStatusPending || !appointment.Date.Equal(today) {
			continue
		}
		if err := s.remind(ctx, appointment); err != nil {
			s.logger.Error(err, "failed to send reminder",
				"appointment_id", appointment.ID.String())
			continue
		}
		sent++
	}

	s.logger.Info("daily reminders processed", "sent", sent)
	return nil
}

func (s *Service) remind(ctx context.Context, appointment *model.Appointment) error {
	patient, err := s.catalog.GetPatient(ctx, appointment.PatientID)
	if err != nil {
		return err
	}
	if patient.Email == nil || *patient.Email == "" {
		return nil
	}
	service, err := s.catalog.GetCatalogService(ctx, appointment.ServiceID)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", *patient.Email)
	m.SetHeader("Subject", "Recordatorio de cita")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola %s, te recordamos tu cita de %s hoy a las %s. Saldo pendiente: %s.",
		patient.FirstNames, service.Name, appointment.Time,
		appointment.PendingBalance.StringFixed(2),
	))

	return s.send(m)
}
