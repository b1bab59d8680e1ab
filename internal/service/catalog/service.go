package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/repository"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

// Cache keys for the reference listings.
const (
	keyPatients   = "patients"
	keyWorkers    = "workers"
	keyServices   = "services"
	keyTreatments = "treatments"
	keyAddons     = "addons"
)

// Service is the catalog accessor: read-mostly reference data behind a
// short-lived cache, invalidated on writes.
type Service struct {
	patients   repository.PatientRepository
	workers    repository.WorkerRepository
	services   repository.ServiceRepository
	treatments repository.TreatmentRepository
	addons     repository.AddonRepository
	cache      *gocache.Cache
}

func NewService(
	patients repository.PatientRepository,
	workers repository.WorkerRepository,
	services repository.ServiceRepository,
	treatments repository.TreatmentRepository,
	addons repository.AddonRepository,
) *Service {
	return &Service{
		patients:   patients,
		workers:    workers,
		services:   services,
		treatments: treatments,
		addons:     addons,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	if cached, ok := s.cache.Get(keyPatients); ok {
		return cached.([]*model.Patient), nil
	}
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyPatients, patients)
	return patients, nil
}

func (s *Service) ListWorkers(ctx context.Context) ([]*model.Worker, error) {
	if cached, ok := s.cache.Get(keyWorkers); ok {
		return cached.([]*model.Worker), nil
	}
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyWorkers, workers)
	return workers, nil
}

func (s *Service) ListServices(ctx context.Context) ([]*model.Service, error) {
	if cached, ok := s.cache.Get(keyServices); ok {
		return cached.([]*model.Service), nil
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyServices, services)
	return services, nil
}

func (s *Service) ListTreatments(ctx context.Context) ([]*model.Treatment, error) {
	if cached, ok := s.cache.Get(keyTreatments); ok {
		return cached.([]*model.Treatment), nil
	}
	treatments, err := s.treatments.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyTreatments, treatments)
	return treatments, nil
}

func (s *Service) ListAddons(ctx context.Context) ([]*model.Addon, error) {
	if cached, ok := s.cache.Get(keyAddons); ok {
		return cached.([]*model.Addon), nil
	}
	addons, err := s.addons.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(keyAddons, addons)
	return addons, nil
}

// ResolvePatient maps a missing patient to ReferenceNotFoundError: the id
// was supplied as a reference on an appointment, not as a lookup target.
func (s *Service) ResolvePatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.patients.Get(ctx, id)
	if isNotFound(err) {
		return nil, apperrors.NewReferenceNotFound("patient", id.String())
	}
	return patient, err
}

func (s *Service) ResolveWorker(ctx context.Context, id uuid.UUID) (*model.Worker, error) {
	worker, err := s.workers.Get(ctx, id)
	if isNotFound(err) {
		return nil, apperrors.NewReferenceNotFound("worker", id.String())
	}
	return worker, err
}

func (s *Service) ResolveService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	service, err := s.services.Get(ctx, id)
	if isNotFound(err) {
		return nil, apperrors.NewReferenceNotFound("service", id.String())
	}
	return service, err
}

func (s *Service) ResolveAddons(ctx context.Context, ids []uuid.UUID) ([]*model.Addon, error) {
	addons := make([]*model.Addon, 0, len(ids))
	for _, id := range ids {
		addon, err := s.addons.Get(ctx, id)
		if isNotFound(err) {
			return nil, apperrors.NewReferenceNotFound("addon", id.String())
		}
		if err != nil {
			return nil, err
		}
		addons = append(addons, addon)
	}
	return addons, nil
}

func (s *Service) invalidate(key string) {
	s.cache.Delete(key)
}

func isNotFound(err error) bool {
	var nf *apperrors.NotFoundError
	return errors.As(err, &nf)
}
