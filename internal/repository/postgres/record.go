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

type recordRepository struct {
	BaseRepository
}

func NewRecordRepository(base BaseRepository) repository.RecordRepository {
	return &recordRepository{base}
}

func (r *recordRepository) Create(ctx context.Context, record *model.ClinicalRecord) error {
	query := `
		INSERT INTO clinical_records (
			id, patient_id, observations, recommendations, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.PatientID,
		record.Observations,
		record.Recommendations,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create clinical record: %w", err)
	}
	return nil
}

func (r *recordRepository) Get(ctx context.Context, id uuid.UUID) (*model.ClinicalRecord, error) {
	query := `
		SELECT id, patient_id, observations, recommendations, created_at, updated_at
		FROM clinical_records
		WHERE id = $1
	`
	var record model.ClinicalRecord
	err := r.db.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("clinical record", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clinical record: %w", err)
	}
	return &record, nil
}

func (r *recordRepository) GetByPatient(ctx context.Context, patientID uuid.UUID) (*model.ClinicalRecord, error) {
	query := `
		SELECT id, patient_id, observations, recommendations, created_at, updated_at
		FROM clinical_records
		WHERE patient_id = $1
	`
	var record model.ClinicalRecord
	err := r.db.GetContext(ctx, &record, query, patientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("clinical record", "")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clinical record: %w", err)
	}
	return &record, nil
}

func (r *recordRepository) Update(ctx context.Context, record *model.ClinicalRecord) error {
	query := `
		UPDATE clinical_records
		SET observations = $1, recommendations = $2, updated_at = $3
		WHERE id = $4
	`
	record.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		record.Observations,
		record.Recommendations,
		record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update clinical record: %w", err)
	}
	return requireRowsAffected(result, "clinical record", record.ID)
}

func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clinical_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete clinical record: %w", err)
	}
	return requireRowsAffected(result, "clinical record", id)
}

func (r *recordRepository) List(ctx context.Context) ([]*model.ClinicalRecord, error) {
	query := `
		SELECT id, patient_id, observations, recommendations, created_at, updated_at
		FROM clinical_records
		ORDER BY created_at DESC
	`
	var records []*model.ClinicalRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list clinical records: %w", err)
	}
	return records, nil
}
