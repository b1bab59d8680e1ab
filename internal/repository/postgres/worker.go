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

type workerRepository struct {
	BaseRepository
}

func NewWorkerRepository(base BaseRepository) repository.WorkerRepository {
	return &workerRepository{base}
}

func (r *workerRepository) Create(ctx context.Context, worker *model.Worker) error {
	query := `
		INSERT INTO workers (
			id, first_names, last_names, document_type, document_number,
			phone, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	worker.ID = uuid.New()
	worker.CreatedAt = time.Now()
	worker.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		worker.ID,
		worker.FirstNames,
		worker.LastNames,
		worker.DocumentType,
		worker.DocumentNumber,
		worker.Phone,
		worker.CreatedAt,
		worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

func (r *workerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Worker, error) {
	query := `
		SELECT id, first_names, last_names, document_type, document_number,
			   phone, created_at, updated_at
		FROM workers
		WHERE id = $1
	`
	var worker model.Worker
	err := r.db.GetContext(ctx, &worker, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("worker", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return &worker, nil
}

func (r *workerRepository) Update(ctx context.Context, worker *model.Worker) error {
	query := `
		UPDATE workers
		SET first_names = $1, last_names = $2, document_type = $3,
			document_number = $4, phone = $5, updated_at = $6
		WHERE id = $7
	`
	worker.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		worker.FirstNames,
		worker.LastNames,
		worker.DocumentType,
		worker.DocumentNumber,
		worker.Phone,
		worker.UpdatedAt,
		worker.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	return requireRowsAffected(result, "worker", worker.ID)
}

func (r *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return requireRowsAffected(result, "worker", id)
}

func (r *workerRepository) List(ctx context.Context) ([]*model.Worker, error) {
	query := `
		SELECT id, first_names, last_names, document_type, document_number,
			   phone, created_at, updated_at
		FROM workers
		ORDER BY last_names ASC, first_names ASC
	`
	var workers []*model.Worker
	if err := r.db.SelectContext(ctx, &workers, query); err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}
