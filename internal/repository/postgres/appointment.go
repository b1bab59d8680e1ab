package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/repository"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

type appointmentRepository struct {
	BaseRepository
	outbox repository.OutboxRepository
}

func NewAppointmentRepository(base BaseRepository, outbox repository.OutboxRepository) repository.AppointmentRepository {
	return &appointmentRepository{BaseRepository: base, outbox: outbox}
}

// Create persists the appointment, its add-on selection and the lifecycle
// event in one transaction.
func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment, event *model.OutboxEvent) error {
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO appointments (
				id, patient_id, worker_id, service_id, date, time_of_day,
				notes, pending_balance, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		_, err := tx.ExecContext(ctx, query,
			appointment.ID,
			appointment.PatientID,
			appointment.WorkerID,
			appointment.ServiceID,
			appointment.Date,
			appointment.Time,
			appointment.Notes,
			appointment.PendingBalance,
			appointment.Status,
			appointment.CreatedAt,
			appointment.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		if err := replaceAppointmentAddons(ctx, tx, appointment.ID, appointment.AddonIDs); err != nil {
			return err
		}
		return r.outbox.CreateTx(ctx, tx, event)
	})
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, patient_id, worker_id, service_id, date, time_of_day,
			   notes, pending_balance, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("appointment", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if err := r.loadAddonIDs(ctx, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment, event *model.OutboxEvent) error {
	appointment.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE appointments
			SET patient_id = $1, worker_id = $2, service_id = $3, date = $4,
				time_of_day = $5, notes = $6, pending_balance = $7,
				status = $8, updated_at = $9
			WHERE id = $10
		`
		result, err := tx.ExecContext(ctx, query,
			appointment.PatientID,
			appointment.WorkerID,
			appointment.ServiceID,
			appointment.Date,
			appointment.Time,
			appointment.Notes,
			appointment.PendingBalance,
			appointment.Status,
			appointment.UpdatedAt,
			appointment.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		if err := requireRowsAffected(result, "appointment", appointment.ID); err != nil {
			return err
		}
		if err := replaceAppointmentAddons(ctx, tx, appointment.ID, appointment.AddonIDs); err != nil {
			return err
		}
		return r.outbox.CreateTx(ctx, tx, event)
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID, event *model.OutboxEvent) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM appointment_addons WHERE appointment_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete appointment addons: %w", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}
		if err := requireRowsAffected(result, "appointment", id); err != nil {
			return err
		}
		return r.outbox.CreateTx(ctx, tx, event)
	})
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_id, worker_id, service_id, date, time_of_day,
			   notes, pending_balance, status, created_at, updated_at
		FROM appointments
		ORDER BY date DESC, time_of_day ASC
	`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	for _, appointment := range appointments {
		if err := r.loadAddonIDs(ctx, appointment); err != nil {
			return nil, err
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) loadAddonIDs(ctx context.Context, appointment *model.Appointment) error {
	query := `
		SELECT addon_id FROM appointment_addons
		WHERE appointment_id = $1
		ORDER BY addon_id ASC
	`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, appointment.ID); err != nil {
		return fmt.Errorf("failed to load appointment addons: %w", err)
	}
	appointment.AddonIDs = ids
	return nil
}

func replaceAppointmentAddons(ctx context.Context, tx *sqlx.Tx, appointmentID uuid.UUID, addonIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM appointment_addons WHERE appointment_id = $1`, appointmentID); err != nil {
		return fmt.Errorf("failed to clear appointment addons: %w", err)
	}
	for _, addonID := range addonIDs {
		query := `INSERT INTO appointment_addons (appointment_id, addon_id) VALUES ($1, $2)`
		if _, err := tx.ExecContext(ctx, query, appointmentID, addonID); err != nil {
			return fmt.Errorf("failed to link addon: %w", err)
		}
	}
	return nil
}
