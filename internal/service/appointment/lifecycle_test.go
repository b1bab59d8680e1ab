package appointment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellitaspa/agenda-api/internal/model"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to model.AppointmentStatus
		allowed  bool
	}{
		{model.AppointmentStatusPending, model.AppointmentStatusConfirmed, true},
		{model.AppointmentStatusPending, model.AppointmentStatusCompleted, true},
		{model.AppointmentStatusPending, model.AppointmentStatusCancelled, true},
		{model.AppointmentStatusConfirmed, model.AppointmentStatusCompleted, true},
		{model.AppointmentStatusConfirmed, model.AppointmentStatusCancelled, true},
		{model.AppointmentStatusConfirmed, model.AppointmentStatusPending, false},
		{model.AppointmentStatusCompleted, model.AppointmentStatusCancelled, false},
		{model.AppointmentStatusCompleted, model.AppointmentStatusPending, false},
		{model.AppointmentStatusCancelled, model.AppointmentStatusConfirmed, false},
		{model.AppointmentStatusPending, model.AppointmentStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionRejectsTerminalStates(t *testing.T) {
	for _, from := range []model.AppointmentStatus{
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	} {
		appt := &model.Appointment{Status: from}
		err := transition(appt, model.AppointmentStatusPending)

		var transErr *apperrors.InvalidTransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, string(from), transErr.From)
		assert.Equal(t, from, appt.Status, "status must not change on rejection")
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	appt := &model.Appointment{Status: model.AppointmentStatusPending}
	err := transition(appt, model.AppointmentStatus("XXXX"))

	var transErr *apperrors.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
}

func TestTransitionApplies(t *testing.T) {
	appt := &model.Appointment{Status: model.AppointmentStatusPending}
	require.NoError(t, transition(appt, model.AppointmentStatusConfirmed))
	assert.Equal(t, model.AppointmentStatusConfirmed, appt.Status)

	require.NoError(t, transition(appt, model.AppointmentStatusCompleted))
	assert.Equal(t, model.AppointmentStatusCompleted, appt.Status)
}

func TestValidateCreateCollectsAllViolations(t *testing.T) {
	err := validateCreate(&model.CreateAppointmentRequest{})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "patient")
	assert.Contains(t, verr.Fields, "worker")
	assert.Contains(t, verr.Fields, "service")
	assert.Contains(t, verr.Fields, "date")
	assert.Contains(t, verr.Fields, "time")
	assert.Len(t, verr.Fields, 5)
}

func TestValidateCreateRejectsMalformedTime(t *testing.T) {
	req := &model.CreateAppointmentRequest{
		PatientID: uuid.New(),
		WorkerID:  uuid.New(),
		ServiceID: uuid.New(),
		Date:      model.NewDate(2025, 3, 10),
		Time:      "25:99",
	}
	err := validateCreate(req)

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "time")
	assert.Len(t, verr.Fields, 1)
}

func TestValidateCreatePasses(t *testing.T) {
	req := &model.CreateAppointmentRequest{
		PatientID: uuid.New(),
		WorkerID:  uuid.New(),
		ServiceID: uuid.New(),
		Date:      model.NewDate(2025, 3, 10),
		Time:      "09:30",
	}
	assert.NoError(t, validateCreate(req))
}

func TestUniqueAddonIDsPreservesOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	got := uniqueAddonIDs([]uuid.UUID{a, b, a, c, b})
	assert.Equal(t, []uuid.UUID{a, b, c}, got)
}
