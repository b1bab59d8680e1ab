package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellitaspa/agenda-api/internal/model"
	"github.com/bellitaspa/agenda-api/internal/service/catalog"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
	"github.com/bellitaspa/agenda-api/pkg/logger"
	"github.com/bellitaspa/agenda-api/pkg/metrics"
)

// One registry per test binary; prometheus collectors may only register once.
var testMetrics = metrics.NewMetrics("agenda_test", "appointment")

type fixture struct {
	svc     *Service
	repo    *fakeAppointmentRepo
	records *fakeRecordRepo

	patient uuid.UUID
	worker  uuid.UUID
	service uuid.UUID
	addon   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	patients := newFakePatientRepo()
	workers := newFakeWorkerRepo()
	services := newFakeServiceRepo()
	treatments := newFakeTreatmentRepo()
	addons := newFakeAddonRepo()
	records := newFakeRecordRepo()
	repo := newFakeAppointmentRepo()

	patient := &model.Patient{
		FirstNames:     "Maria",
		LastNames:      "Gomez",
		DocumentType:   "CC",
		DocumentNumber: "1001001001",
	}
	patient.ID = uuid.New()
	require.NoError(t, patients.Create(ctx, patient))

	worker := &model.Worker{
		FirstNames:     "Laura",
		LastNames:      "Diaz",
		DocumentType:   "CC",
		DocumentNumber: "2002002002",
	}
	worker.ID = uuid.New()
	require.NoError(t, workers.Create(ctx, worker))

	service := &model.Service{
		Name:     "Limpieza facial",
		Duration: 60,
		Price:    decimal.RequireFromString("45.00"),
	}
	service.ID = uuid.New()
	require.NoError(t, services.Create(ctx, service, nil))

	addon := &model.Addon{
		Name:  "Mascarilla",
		Price: decimal.RequireFromString("10.00"),
	}
	addon.ID = uuid.New()
	require.NoError(t, addons.Create(ctx, addon))

	catalogSvc := catalog.NewService(patients, workers, services, treatments, addons)
	svc := NewService(repo, records, catalogSvc, logger.NewLogger(nil), testMetrics)

	return &fixture{
		svc:     svc,
		repo:    repo,
		records: records,
		patient: patient.ID,
		worker:  worker.ID,
		service: service.ID,
		addon:   addon.ID,
	}
}

func (f *fixture) createRequest() *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		PatientID: f.patient,
		WorkerID:  f.worker,
		ServiceID: f.service,
		Date:      model.NewDate(2025, 3, 10),
		Time:      "09:30",
	}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.createRequest()
	req.AddonIDs = []uuid.UUID{f.addon}

	appt, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusPending, appt.Status)
	assert.Equal(t, "55.00", appt.PendingBalance.StringFixed(2))
	assert.NotEqual(t, uuid.Nil, appt.ID)

	event := f.repo.lastEvent()
	require.NotNil(t, event)
	assert.Equal(t, model.EventAppointmentCreated, event.EventType)
}

func TestCreateAppointmentDeduplicatesAddons(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.createRequest()
	req.AddonIDs = []uuid.UUID{f.addon, f.addon, f.addon}

	appt, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{f.addon}, appt.AddonIDs)
	assert.Equal(t, "55.00", appt.PendingBalance.StringFixed(2))
}

func TestCreateAppointmentProvisionsClinicalRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, f.records.count())

	record, err := f.records.GetByPatient(ctx, f.patient)
	require.NoError(t, err)
	assert.Equal(t, f.patient, record.PatientID)

	// A second booking reuses the existing record.
	_, err = f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, f.records.count())
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.createRequest()
	req.WorkerID = uuid.Nil
	req.Time = ""

	_, err := f.svc.Create(ctx, req)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "worker")
	assert.Contains(t, verr.Fields, "time")
}

func TestCreateAppointmentUnknownWorker(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.createRequest()
	req.WorkerID = uuid.New()

	_, err := f.svc.Create(ctx, req)
	var refErr *apperrors.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "worker", refErr.Entity)
}

func TestUpdateAppointmentRepricesOnSelectionChange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	appt, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	require.Equal(t, "45.00", appt.PendingBalance.StringFixed(2))

	addonIDs := []uuid.UUID{f.addon}
	updated, err := f.svc.Update(ctx, appt.ID, &model.UpdateAppointmentRequest{
		AddonIDs: &addonIDs,
	})
	require.NoError(t, err)
	assert.Equal(t, "55.00", updated.PendingBalance.StringFixed(2))
}

func TestStatusTransitionPreservesBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := f.createRequest()
	req.AddonIDs = []uuid.UUID{f.addon}
	appt, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	completed, err := f.svc.ChangeStatus(ctx, appt.ID, model.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, completed.Status)
	assert.Equal(t, "55.00", completed.PendingBalance.StringFixed(2))

	event := f.repo.lastEvent()
	require.NotNil(t, event)
	assert.Equal(t, model.EventAppointmentStatusChanged, event.EventType)
}

func TestCancellationPreservesBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	appt, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	cancelled, err := f.svc.ChangeStatus(ctx, appt.ID, model.AppointmentStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, cancelled.Status)
	assert.Equal(t, "45.00", cancelled.PendingBalance.StringFixed(2))
}

func TestChangeStatusRejectsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	appt, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, appt.ID, model.AppointmentStatusCancelled)
	require.NoError(t, err)

	_, err = f.svc.ChangeStatus(ctx, appt.ID, model.AppointmentStatusConfirmed)
	var transErr *apperrors.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, "CANC", transErr.From)
}

func TestUpdateRejectsFieldEditsOnTerminal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	appt, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, appt.ID, model.AppointmentStatusCancelled)
	require.NoError(t, err)

	notes := "cambio tardio"
	_, err = f.svc.Update(ctx, appt.ID, &model.UpdateAppointmentRequest{Notes: &notes})
	var locked *apperrors.AppointmentLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, "CANC", locked.Status)
}

func TestUpdateStatusThroughUpdateRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	appt, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	status := model.AppointmentStatusConfirmed
	updated, err := f.svc.Update(ctx, appt.ID, &model.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, updated.Status)

	event := f.repo.lastEvent()
	require.NotNil(t, event)
	assert.Equal(t, model.EventAppointmentStatusChanged, event.EventType)
}

func TestDeleteWorksRegardlessOfStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	appt, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, appt.ID, model.AppointmentStatusCompleted)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, appt.ID))

	_, err = f.svc.Get(ctx, appt.ID)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)

	event := f.repo.lastEvent()
	require.NotNil(t, event)
	assert.Equal(t, model.EventAppointmentDeleted, event.EventType)
}

func TestListAppliesFiltersAndOrdering(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, first.ID, model.AppointmentStatusCancelled)
	require.NoError(t, err)

	second, err := f.svc.Create(ctx, f.createRequest())
	require.NoError(t, err)

	otherDay := f.createRequest()
	otherDay.Date = model.NewDate(2025, 3, 11)
	_, err = f.svc.Create(ctx, otherDay)
	require.NoError(t, err)

	target := model.NewDate(2025, 3, 10)
	got, err := f.svc.List(ctx, model.AppointmentFilters{Date: &target})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// PEND sorts before CANC.
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestGetUnknownAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Get(ctx, uuid.New())
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}
