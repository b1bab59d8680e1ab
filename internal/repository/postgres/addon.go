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

type addonRepository struct {
	BaseRepository
}

func NewAddonRepository(base BaseRepository) repository.AddonRepository {
	return &addonRepository{base}
}

func (r *addonRepository) Create(ctx context.Context, addon *model.Addon) error {
	query := `
		INSERT INTO addons (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	addon.ID = uuid.New()
	addon.CreatedAt = time.Now()
	addon.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		addon.ID,
		addon.Name,
		addon.Price,
		addon.CreatedAt,
		addon.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create addon: %w", err)
	}
	return nil
}

func (r *addonRepository) Get(ctx context.Context, id uuid.UUID) (*model.Addon, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM addons
		WHERE id = $1
	`
	var addon model.Addon
	err := r.db.GetContext(ctx, &addon, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("addon", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get addon: %w", err)
	}
	return &addon, nil
}

func (r *addonRepository) Update(ctx context.Context, addon *model.Addon) error {
	query := `
		UPDATE addons
		SET name = $1, price = $2, updated_at = $3
		WHERE id = $4
	`
	addon.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		addon.Name,
		addon.Price,
		addon.UpdatedAt,
		addon.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update addon: %w", err)
	}
	return requireRowsAffected(result, "addon", addon.ID)
}

func (r *addonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM addons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete addon: %w", err)
	}
	return requireRowsAffected(result, "addon", id)
}

func (r *addonRepository) List(ctx context.Context) ([]*model.Addon, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM addons
		ORDER BY name ASC
	`
	var addons []*model.Addon
	if err := r.db.SelectContext(ctx, &addons, query); err != nil {
		return nil, fmt.Errorf("failed to list addons: %w", err)
	}
	return addons, nil
}
