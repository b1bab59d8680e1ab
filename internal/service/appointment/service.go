package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/repository"
	"github.com/bellitaspa/agenda-api/internal/service/billing"
	"github.com/bellitaspa/agenda-api/internal/service/catalog"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
	"github.com/bellitaspa/agenda-api/pkg/logger"
	"github.com/bellitaspa/agenda-api/pkg/metrics"
)

// Service is the repository facade: it validates, prices and persists
// appointment changes, and serves filtered, ordered listings.
//
// Concurrent updates to the same appointment are last-write-wins; there
// is no version check.
type Service struct {
	repo    repository.AppointmentRepository
	records repository.RecordRepository
	catalog *catalog.Service
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewService(
	repo repository.AppointmentRepository,
	records repository.RecordRepository,
	catalogSvc *catalog.Service,
	log *logger.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:    repo,
		records: records,
		catalog: catalogSvc,
		logger:  log,
		metrics: m,
	}
}

// Create validates the booking, resolves its references, computes the
// balance and persists the record in status PEND.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	if _, err := s.catalog.ResolvePatient(ctx, req.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.catalog.ResolveWorker(ctx, req.WorkerID); err != nil {
		return nil, err
	}
	service, err := s.catalog.ResolveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	addonIDs := uniqueAddonIDs(req.AddonIDs)
	addons, err := s.catalog.ResolveAddons(ctx, addonIDs)
	if err != nil {
		return nil, err
	}

	balance, err := billing.ComputeBalance(service, addons)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		PatientID:      req.PatientID,
		WorkerID:       req.WorkerID,
		ServiceID:      req.ServiceID,
		AddonIDs:       addonIDs,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		PendingBalance: balance,
		Status:         model.AppointmentStatusPending,
	}
	appointment.ID = uuid.New()

	event, err := model.NewOutboxEvent(model.EventAppointmentCreated, appointment)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, appointment, event); err != nil {
		return nil, wrapStorage("create appointment", err)
	}
	s.metrics.AppointmentsCreated.Inc()

	s.ensureClinicalRecord(ctx, appointment.PatientID)

	return appointment, nil
}

// Update loads the record, rejects field edits on terminal appointments,
// re-validates, recomputes the balance when the priced selection changed
// and applies a requested status change through the transition rules.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, wrapStorage("get appointment", err)
	}

	if appointment.Status.Terminal() && req.ChangesFields() {
		return nil, apperrors.NewAppointmentLocked(id.String(), string(appointment.Status))
	}

	if req.PatientID != nil {
		appointment.PatientID = *req.PatientID
	}
	if req.WorkerID != nil {
		appointment.WorkerID = *req.WorkerID
	}
	if req.ServiceID != nil {
		appointment.ServiceID = *req.ServiceID
	}
	if req.AddonIDs != nil {
		appointment.AddonIDs = uniqueAddonIDs(*req.AddonIDs)
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := validateUpdated(appointment); err != nil {
		return nil, err
	}

	if req.PatientID != nil {
		if _, err := s.catalog.ResolvePatient(ctx, appointment.PatientID); err != nil {
			return nil, err
		}
	}
	if req.WorkerID != nil {
		if _, err := s.catalog.ResolveWorker(ctx, appointment.WorkerID); err != nil {
			return nil, err
		}
	}

	// A pure status transition never alters the amount owed; only a
	// selection edit reprices the appointment.
	if req.ChangesSelection() {
		service, err := s.catalog.ResolveService(ctx, appointment.ServiceID)
		if err != nil {
			return nil, err
		}
		addons, err := s.catalog.ResolveAddons(ctx, appointment.AddonIDs)
		if err != nil {
			return nil, err
		}
		balance, err := billing.ComputeBalance(service, addons)
		if err != nil {
			return nil, err
		}
		appointment.PendingBalance = balance
	}

	eventType := model.EventAppointmentUpdated
	if req.Status != nil && *req.Status != appointment.Status {
		from := appointment.Status
		if err := transition(appointment, *req.Status); err != nil {
			return nil, err
		}
		s.metrics.StatusTransitions.WithLabelValues(string(from), string(appointment.Status)).Inc()
		if !req.ChangesFields() {
			eventType = model.EventAppointmentStatusChanged
		}
	}

	event, err := model.NewOutboxEvent(eventType, appointment)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, appointment, event); err != nil {
		return nil, wrapStorage("update appointment", err)
	}
	return appointment, nil
}

// ChangeStatus moves the appointment along the lifecycle graph without
// touching any other field.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, wrapStorage("get appointment", err)
	}

	from := appointment.Status
	if err := transition(appointment, status); err != nil {
		return nil, err
	}
	s.metrics.StatusTransitions.WithLabelValues(string(from), string(status)).Inc()

	event, err := model.NewOutboxEvent(model.EventAppointmentStatusChanged, appointment)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, appointment, event); err != nil {
		return nil, wrapStorage("update appointment", err)
	}
	return appointment, nil
}

// Delete removes the record unconditionally, regardless of status.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return wrapStorage("get appointment", err)
	}

	event, err := model.NewOutboxEvent(model.EventAppointmentDeleted, appointment)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, event); err != nil {
		return wrapStorage("delete appointment", err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, wrapStorage("get appointment", err)
	}
	return appointment, nil
}

// List reads the current snapshot and applies the query engine.
func (s *Service) List(ctx context.Context, filters model.AppointmentFilters) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrapStorage("list appointments", err)
	}
	return Query(appointments, filters), nil
}

// ensureClinicalRecord provisions an empty record the first time a
// patient books. Failure here never fails the booking itself.
func (s *Service) ensureClinicalRecord(ctx context.Context, patientID uuid.UUID) {
	_, err := s.records.GetByPatient(ctx, patientID)
	if err == nil {
		return
	}
	var nf *apperrors.NotFoundError
	if !errors.As(err, &nf) {
		s.logger.Error(err, "failed to check clinical record", "patient_id", patientID.String())
		return
	}
	record := &model.ClinicalRecord{PatientID: patientID}
	if err := s.records.Create(ctx, record); err != nil {
		s.logger.Error(err, "failed to provision clinical record", "patient_id", patientID.String())
	}
}

// wrapStorage passes domain errors through untouched and wraps everything
// else as an opaque StorageError.
func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		nf     *apperrors.NotFoundError
		locked *apperrors.AppointmentLockedError
		ref    *apperrors.ReferenceNotFoundError
	)
	if errors.As(err, &nf) || errors.As(err, &locked) || errors.As(err, &ref) {
		return err
	}
	return apperrors.NewStorage(op, err)
}
