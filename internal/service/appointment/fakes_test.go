package appointment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bellitaspa/agenda-api/internal/model"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

// In-memory repositories backing the service tests. Writes and reads go
// through the same interfaces the postgres implementations satisfy.

type fakePatientRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Patient
	order []uuid.UUID
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{items: make(map[uuid.UUID]*model.Patient)}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[patient.ID] = patient
	r.order = append(r.order, patient.ID)
	return nil
}

func (r *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("patient", id.String())
	}
	return patient, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[patient.ID]; !ok {
		return apperrors.NewNotFound("patient", patient.ID.String())
	}
	r.items[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakePatientRepo) List(_ context.Context) ([]*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Patient, 0, len(r.order))
	for _, id := range r.order {
		if patient, ok := r.items[id]; ok {
			out = append(out, patient)
		}
	}
	return out, nil
}

type fakeWorkerRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{items: make(map[uuid.UUID]*model.Worker)}
}

func (r *fakeWorkerRepo) Create(_ context.Context, worker *model.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) Get(_ context.Context, id uuid.UUID) (*model.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	worker, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("worker", id.String())
	}
	return worker, nil
}

func (r *fakeWorkerRepo) Update(_ context.Context, worker *model.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeWorkerRepo) List(_ context.Context) ([]*model.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Worker, 0, len(r.items))
	for _, worker := range r.items {
		out = append(out, worker)
	}
	return out, nil
}

type fakeServiceRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{items: make(map[uuid.UUID]*model.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, service *model.Service, _ []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Get(_ context.Context, id uuid.UUID) (*model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	service, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("service", id.String())
	}
	return service, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, service *model.Service, _ *[]uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeServiceRepo) List(_ context.Context) ([]*model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Service, 0, len(r.items))
	for _, service := range r.items {
		out = append(out, service)
	}
	return out, nil
}

type fakeTreatmentRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Treatment
}

func newFakeTreatmentRepo() *fakeTreatmentRepo {
	return &fakeTreatmentRepo{items: make(map[uuid.UUID]*model.Treatment)}
}

func (r *fakeTreatmentRepo) Create(_ context.Context, treatment *model.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[treatment.ID] = treatment
	return nil
}

func (r *fakeTreatmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	treatment, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("treatment", id.String())
	}
	return treatment, nil
}

func (r *fakeTreatmentRepo) Update(_ context.Context, treatment *model.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[treatment.ID] = treatment
	return nil
}

func (r *fakeTreatmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeTreatmentRepo) List(_ context.Context) ([]*model.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Treatment, 0, len(r.items))
	for _, treatment := range r.items {
		out = append(out, treatment)
	}
	return out, nil
}

type fakeAddonRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Addon
}

func newFakeAddonRepo() *fakeAddonRepo {
	return &fakeAddonRepo{items: make(map[uuid.UUID]*model.Addon)}
}

func (r *fakeAddonRepo) Create(_ context.Context, addon *model.Addon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[addon.ID] = addon
	return nil
}

func (r *fakeAddonRepo) Get(_ context.Context, id uuid.UUID) (*model.Addon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	addon, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("addon", id.String())
	}
	return addon, nil
}

func (r *fakeAddonRepo) Update(_ context.Context, addon *model.Addon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[addon.ID] = addon
	return nil
}

func (r *fakeAddonRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeAddonRepo) List(_ context.Context) ([]*model.Addon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Addon, 0, len(r.items))
	for _, addon := range r.items {
		out = append(out, addon)
	}
	return out, nil
}

type fakeRecordRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.ClinicalRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{items: make(map[uuid.UUID]*model.ClinicalRecord)}
}

func (r *fakeRecordRepo) GetByPatient(_ context.Context, patientID uuid.UUID) (*model.ClinicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.items {
		if record.PatientID == patientID {
			return record, nil
		}
	}
	return nil, apperrors.NewNotFound("clinical record", "")
}

func (r *fakeRecordRepo) Get(_ context.Context, id uuid.UUID) (*model.ClinicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("clinical record", id.String())
	}
	return record, nil
}

func (r *fakeRecordRepo) Create(_ context.Context, record *model.ClinicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.items[record.ID] = record
	return nil
}

func (r *fakeRecordRepo) Update(_ context.Context, record *model.ClinicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[record.ID] = record
	return nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeRecordRepo) List(_ context.Context) ([]*model.ClinicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.ClinicalRecord, 0, len(r.items))
	for _, record := range r.items {
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeRecordRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeAppointmentRepo struct {
	mu     sync.Mutex
	items  map[uuid.UUID]*model.Appointment
	order  []uuid.UUID
	events []*model.OutboxEvent
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[uuid.UUID]*model.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *model.Appointment, event *model.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[appointment.ID] = appointment
	r.order = append(r.order, appointment.ID)
	r.events = append(r.events, event)
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("appointment", id.String())
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *model.Appointment, event *model.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[appointment.ID]; !ok {
		return apperrors.NewNotFound("appointment", appointment.ID.String())
	}
	r.items[appointment.ID] = appointment
	r.events = append(r.events, event)
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID, event *model.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFound("appointment", id.String())
	}
	delete(r.items, id)
	r.events = append(r.events, event)
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Appointment, 0, len(r.order))
	for _, id := range r.order {
		if appointment, ok := r.items[id]; ok {
			out = append(out, appointment)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) lastEvent() *model.OutboxEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}
