package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bellitaspa/agenda-api/internal/model"
)

// Write operations on reference data. Simple pass-throughs that drop the
// relevant cache entry so the next listing re-reads storage.

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := req.ToPatient(time.Now())
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	s.invalidate(keyPatients)
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	return s.patients.Get(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.patients.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstNames != nil {
		patient.FirstNames = *req.FirstNames
	}
	if req.LastNames != nil {
		patient.LastNames = *req.LastNames
	}
	if req.DocumentType != nil {
		patient.DocumentType = *req.DocumentType
	}
	if req.DocumentNumber != nil {
		patient.DocumentNumber = *req.DocumentNumber
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.BirthDate != nil {
		patient.BirthDate = *req.BirthDate
	}
	if req.EmergencyName != nil {
		patient.EmergencyName = req.EmergencyName
	}
	if req.EmergencyPhone != nil {
		patient.EmergencyPhone = req.EmergencyPhone
	}
	if req.MedicalConditions != nil {
		patient.MedicalConditions = req.MedicalConditions
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	s.invalidate(keyPatients)
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(keyPatients)
	return nil
}

func (s *Service) CreateWorker(ctx context.Context, req *model.CreateWorkerRequest) (*model.Worker, error) {
	worker := &model.Worker{
		FirstNames:     req.FirstNames,
		LastNames:      req.LastNames,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, err
	}
	s.invalidate(keyWorkers)
	return worker, nil
}

func (s *Service) GetWorker(ctx context.Context, id uuid.UUID) (*model.Worker, error) {
	return s.workers.Get(ctx, id)
}

func (s *Service) UpdateWorker(ctx context.Context, id uuid.UUID, req *model.UpdateWorkerRequest) (*model.Worker, error) {
	worker, err := s.workers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstNames != nil {
		worker.FirstNames = *req.FirstNames
	}
	if req.LastNames != nil {
		worker.LastNames = *req.LastNames
	}
	if req.DocumentType != nil {
		worker.DocumentType = *req.DocumentType
	}
	if req.DocumentNumber != nil {
		worker.DocumentNumber = *req.DocumentNumber
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if err := s.workers.Update(ctx, worker); err != nil {
		return nil, err
	}
	s.invalidate(keyWorkers)
	return worker, nil
}

func (s *Service) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	if err := s.workers.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(keyWorkers)
	return nil
}

func (s *Service) CreateCatalogService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	service := &model.Service{
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
	}
	if err := s.services.Create(ctx, service, req.TreatmentIDs); err != nil {
		return nil, err
	}
	s.invalidate(keyServices)
	return s.services.Get(ctx, service.ID)
}

func (s *Service) GetCatalogService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.services.Get(ctx, id)
}

func (s *Service) UpdateCatalogService(ctx context.Context, id uuid.UUID, req *model.UpdateServiceRequest) (*model.Service, error) {
	service, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if err := s.services.Update(ctx, service, req.TreatmentIDs); err != nil {
		return nil, err
	}
	s.invalidate(keyServices)
	return s.services.Get(ctx, id)
}

func (s *Service) DeleteCatalogService(ctx context.Context, id uuid.UUID) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(keyServices)
	return nil
}

func (s *Service) CreateTreatment(ctx context.Context, req *model.CreateTreatmentRequest) (*model.Treatment, error) {
	treatment := &model.Treatment{
		Name:        req.Name,
		Duration:    req.Duration,
		Description: req.Description,
	}
	if err := s.treatments.Create(ctx, treatment); err != nil {
		return nil, err
	}
	s.invalidate(keyTreatments)
	return treatment, nil
}

func (s *Service) GetTreatment(ctx context.Context, id uuid.UUID) (*model.Treatment, error) {
	return s.treatments.Get(ctx, id)
}

func (s *Service) UpdateTreatment(ctx context.Context, id uuid.UUID, req *model.UpdateTreatmentRequest) (*model.Treatment, error) {
	treatment, err := s.treatments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		treatment.Name = *req.Name
	}
	if req.Duration != nil {
		treatment.Duration = *req.Duration
	}
	if req.Description != nil {
		treatment.Description = *req.Description
	}
	if err := s.treatments.Update(ctx, treatment); err != nil {
		return nil, err
	}
	s.invalidate(keyTreatments)
	return treatment, nil
}

func (s *Service) DeleteTreatment(ctx context.Context, id uuid.UUID) error {
	if err := s.treatments.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(keyTreatments)
	return nil
}

func (s *Service) CreateAddon(ctx context.Context, req *model.CreateAddonRequest) (*model.Addon, error) {
	addon := &model.Addon{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.addons.Create(ctx, addon); err != nil {
		return nil, err
	}
	s.invalidate(keyAddons)
	return addon, nil
}

func (s *Service) GetAddon(ctx context.Context, id uuid.UUID) (*model.Addon, error) {
	return s.addons.Get(ctx, id)
}

func (s *Service) UpdateAddon(ctx context.Context, id uuid.UUID, req *model.UpdateAddonRequest) (*model.Addon, error) {
	addon, err := s.addons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		addon.Name = *req.Name
	}
	if req.Price != nil {
		addon.Price = *req.Price
	}
	if err := s.addons.Update(ctx, addon); err != nil {
		return nil, err
	}
	s.invalidate(keyAddons)
	return addon, nil
}

func (s *Service) DeleteAddon(ctx context.Context, id uuid.UUID) error {
	if err := s.addons.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(keyAddons)
	return nil
}
