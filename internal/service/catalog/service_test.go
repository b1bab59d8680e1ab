package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellitaspa/agenda-api/internal/model"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

// countingAddonRepo tracks reads so the tests can observe cache behavior.
type countingAddonRepo struct {
	items     map[uuid.UUID]*model.Addon
	listCalls int
}

func newCountingAddonRepo() *countingAddonRepo {
	return &countingAddonRepo{items: make(map[uuid.UUID]*model.Addon)}
}

func (r *countingAddonRepo) Create(_ context.Context, addon *model.Addon) error {
	if addon.ID == uuid.Nil {
		addon.ID = uuid.New()
	}
	r.items[addon.ID] = addon
	return nil
}

func (r *countingAddonRepo) Get(_ context.Context, id uuid.UUID) (*model.Addon, error) {
	addon, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("addon", id.String())
	}
	return addon, nil
}

func (r *countingAddonRepo) Update(_ context.Context, addon *model.Addon) error {
	r.items[addon.ID] = addon
	return nil
}

func (r *countingAddonRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *countingAddonRepo) List(_ context.Context) ([]*model.Addon, error) {
	r.listCalls++
	out := make([]*model.Addon, 0, len(r.items))
	for _, addon := range r.items {
		out = append(out, addon)
	}
	return out, nil
}

type nilPatientRepo struct{}

func (nilPatientRepo) Create(context.Context, *model.Patient) error { return nil }
func (nilPatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	return nil, apperrors.NewNotFound("patient", id.String())
}
func (nilPatientRepo) Update(context.Context, *model.Patient) error { return nil }
func (nilPatientRepo) Delete(context.Context, uuid.UUID) error      { return nil }
func (nilPatientRepo) List(context.Context) ([]*model.Patient, error) {
	return nil, nil
}

type nilWorkerRepo struct{}

func (nilWorkerRepo) Create(context.Context, *model.Worker) error { return nil }
func (nilWorkerRepo) Get(_ context.Context, id uuid.UUID) (*model.Worker, error) {
	return nil, apperrors.NewNotFound("worker", id.String())
}
func (nilWorkerRepo) Update(context.Context, *model.Worker) error { return nil }
func (nilWorkerRepo) Delete(context.Context, uuid.UUID) error     { return nil }
func (nilWorkerRepo) List(context.Context) ([]*model.Worker, error) {
	return nil, nil
}

type nilServiceRepo struct{}

func (nilServiceRepo) Create(context.Context, *model.Service, []uuid.UUID) error { return nil }
func (nilServiceRepo) Get(_ context.Context, id uuid.UUID) (*model.Service, error) {
	return nil, apperrors.NewNotFound("service", id.String())
}
func (nilServiceRepo) Update(context.Context, *model.Service, *[]uuid.UUID) error { return nil }
func (nilServiceRepo) Delete(context.Context, uuid.UUID) error                    { return nil }
func (nilServiceRepo) List(context.Context) ([]*model.Service, error) {
	return nil, nil
}

type nilTreatmentRepo struct{}

func (nilTreatmentRepo) Create(context.Context, *model.Treatment) error { return nil }
func (nilTreatmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Treatment, error) {
	return nil, apperrors.NewNotFound("treatment", id.String())
}
func (nilTreatmentRepo) Update(context.Context, *model.Treatment) error { return nil }
func (nilTreatmentRepo) Delete(context.Context, uuid.UUID) error        { return nil }
func (nilTreatmentRepo) List(context.Context) ([]*model.Treatment, error) {
	return nil, nil
}

func newTestService(addons *countingAddonRepo) *Service {
	return NewService(nilPatientRepo{}, nilWorkerRepo{}, nilServiceRepo{}, nilTreatmentRepo{}, addons)
}

func TestListAddonsCaches(t *testing.T) {
	ctx := context.Background()
	repo := newCountingAddonRepo()
	addon := &model.Addon{Name: "Mascarilla", Price: decimal.RequireFromString("10.00")}
	addon.ID = uuid.New()
	require.NoError(t, repo.Create(ctx, addon))

	svc := newTestService(repo)

	first, err := svc.ListAddons(ctx)
	require.NoError(t, err)
	second, err := svc.ListAddons(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "second listing must come from cache")
}

func TestCreateAddonInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := newCountingAddonRepo()
	svc := newTestService(repo)

	_, err := svc.ListAddons(ctx)
	require.NoError(t, err)

	_, err = svc.CreateAddon(ctx, &model.CreateAddonRequest{
		Name:  "Parafina",
		Price: decimal.RequireFromString("7.50"),
	})
	require.NoError(t, err)

	listed, err := svc.ListAddons(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, 2, repo.listCalls)
}

func TestResolveAddonsMapsMissingToReferenceError(t *testing.T) {
	ctx := context.Background()
	repo := newCountingAddonRepo()
	svc := newTestService(repo)

	missing := uuid.New()
	_, err := svc.ResolveAddons(ctx, []uuid.UUID{missing})

	var refErr *apperrors.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "addon", refErr.Entity)
	assert.Equal(t, missing.String(), refErr.ID)
}

func TestResolvePatientMapsMissingToReferenceError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newCountingAddonRepo())

	_, err := svc.ResolvePatient(ctx, uuid.New())

	var refErr *apperrors.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "patient", refErr.Entity)
}
