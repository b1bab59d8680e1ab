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

type serviceRepository struct {
	BaseRepository
}

func NewServiceRepository(base BaseRepository) repository.ServiceRepository {
	return &serviceRepository{base}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service, treatmentIDs []uuid.UUID) error {
	service.ID = uuid.New()
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO services (id, name, duration, price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := tx.ExecContext(ctx, query,
			service.ID,
			service.Name,
			service.Duration,
			service.Price,
			service.CreatedAt,
			service.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}
		return replaceServiceTreatments(ctx, tx, service.ID, treatmentIDs)
	})
}

func (r *serviceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, name, duration, price, created_at, updated_at
		FROM services
		WHERE id = $1
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("service", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if err := r.loadTreatments(ctx, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service, treatmentIDs *[]uuid.UUID) error {
	service.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE services
			SET name = $1, duration = $2, price = $3, updated_at = $4
			WHERE id = $5
		`
		result, err := tx.ExecContext(ctx, query,
			service.Name,
			service.Duration,
			service.Price,
			service.UpdatedAt,
			service.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update service: %w", err)
		}
		if err := requireRowsAffected(result, "service", service.ID); err != nil {
			return err
		}
		if treatmentIDs != nil {
			return replaceServiceTreatments(ctx, tx, service.ID, *treatmentIDs)
		}
		return nil
	})
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM service_treatments WHERE service_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete service treatments: %w", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}
		return requireRowsAffected(result, "service", id)
	})
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	query := `
		SELECT id, name, duration, price, created_at, updated_at
		FROM services
		ORDER BY name ASC
	`
	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	for _, service := range services {
		if err := r.loadTreatments(ctx, service); err != nil {
			return nil, err
		}
	}
	return services, nil
}

func (r *serviceRepository) loadTreatments(ctx context.Context, service *model.Service) error {
	query := `
		SELECT t.id, t.name, t.duration, t.description, t.created_at, t.updated_at
		FROM treatments t
		JOIN service_treatments st ON st.treatment_id = t.id
		WHERE st.service_id = $1
		ORDER BY t.name ASC
	`
	var treatments []model.Treatment
	if err := r.db.SelectContext(ctx, &treatments, query, service.ID); err != nil {
		return fmt.Errorf("failed to load service treatments: %w", err)
	}
	service.Treatments = treatments
	return nil
}

func replaceServiceTreatments(ctx context.Context, tx *sqlx.Tx, serviceID uuid.UUID, treatmentIDs []uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM service_treatments WHERE service_id = $1`, serviceID); err != nil {
		return fmt.Errorf("failed to clear service treatments: %w", err)
	}
	for _, treatmentID := range treatmentIDs {
		query := `INSERT INTO service_treatments (service_id, treatment_id) VALUES ($1, $2)`
		if _, err := tx.ExecContext(ctx, query, serviceID, treatmentID); err != nil {
			return fmt.Errorf("failed to link treatment: %w", err)
		}
	}
	return nil
}
