package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/repository"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

type treatmentRepository struct {
	BaseRepository
}

func NewTreatmentRepository(base BaseRepository) repository.TreatmentRepository {
	return &treatmentRepository{base}
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *model.Treatment) error {
	query := `
		INSERT INTO treatments (id, name, duration, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	treatment.ID = uuid.New()
	treatment.CreatedAt = time.Now()
	treatment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		treatment.ID,
		treatment.Name,
		treatment.Duration,
		treatment.Description,
		treatment.CreatedAt,
		treatment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create treatment: %w", err)
	}
	return nil
}

func (r *treatmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Treatment, error) {
	query := `
		SELECT id, name, duration, description, created_at, updated_at
		FROM treatments
		WHERE id = $1
	`
	var treatment model.Treatment
	err := r.db.GetContext(ctx, &treatment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("treatment", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}
	return &treatment, nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *model.Treatment) error {
	query := `
		UPDATE treatments
		SET name = $1, duration = $2, description = $3, updated_at = $4
		WHERE id = $5
	`
	treatment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		treatment.Name,
		treatment.Duration,
		treatment.Description,
		treatment.UpdatedAt,
		treatment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update treatment: %w", err)
	}
	return requireRowsAffected(result, "treatment", treatment.ID)
}

func (r *treatmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM treatments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete treatment: %w", err)
	}
	return requireRowsAffected(result, "treatment", id)
}

func (r *treatmentRepository) List(ctx context.Context) ([]*model.Treatment, error) {
	query := `
		SELECT id, name, duration, description, created_at, updated_at
		FROM treatments
		ORDER BY name ASC
	`
	var treatments []*model.Treatment
	if err := r.db.SelectContext(ctx, &treatments, query); err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}
