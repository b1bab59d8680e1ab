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

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, first_names, last_names, document_type, document_number,
			phone, email, address, birth_date, emergency_name, emergency_phone,
			medical_conditions, allergies, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	patient.ID = uuid.New()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.FirstNames,
		patient.LastNames,
		patient.DocumentType,
		patient.DocumentNumber,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.BirthDate,
		patient.EmergencyName,
		patient.EmergencyPhone,
		patient.MedicalConditions,
		patient.Allergies,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `
		SELECT id, first_names, last_names, document_type, document_number,
			   phone, email, address, birth_date, emergency_name, emergency_phone,
			   medical_conditions, allergies, created_at, updated_at
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("patient", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET first_names = $1, last_names = $2, document_type = $3,
			document_number = $4, phone = $5, email = $6, address = $7,
			birth_date = $8, emergency_name = $9, emergency_phone = $10,
			medical_conditions = $11, allergies = $12, updated_at = $13
		WHERE id = $14
	`
	patient.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		patient.FirstNames,
		patient.LastNames,
		patient.DocumentType,
		patient.DocumentNumber,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.BirthDate,
		patient.EmergencyName,
		patient.EmergencyPhone,
		patient.MedicalConditions,
		patient.Allergies,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return requireRowsAffected(result, "patient", patient.ID)
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return requireRowsAffected(result, "patient", id)
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `
		SELECT id, first_names, last_names, document_type, document_number,
			   phone, email, address, birth_date, emergency_name, emergency_phone,
			   medical_conditions, allergies, created_at, updated_at
		FROM patients
		ORDER BY last_names ASC, first_names ASC
	`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// requireRowsAffected converts a zero-row write into a NotFoundError.
func requireRowsAffected(result sql.Result, resource string, id uuid.UUID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound(resource, id.String())
	}
	return nil
}
