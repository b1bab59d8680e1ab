package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/bellitaspa/agenda-api/internal/model"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

// allowedTransitions is the lifecycle graph. PEND may move to any other
// status; CONF may still complete or cancel; REAL and CANC are terminal.
var allowedTransitions = map[model.AppointmentStatus][]model.AppointmentStatus{
	model.AppointmentStatusPending: {
		model.AppointmentStatusConfirmed,
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	},
	model.AppointmentStatusConfirmed: {
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	},
}

// CanTransition reports whether the status change is permitted.
func CanTransition(from, to model.AppointmentStatus) bool {
	if from == to {
		return false
	}
	for _, allowed := range allowedTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

// transition applies the status change or fails with
// InvalidTransitionError. The pending balance is never touched here.
func transition(appointment *model.Appointment, to model.AppointmentStatus) error {
	if !to.Valid() || !CanTransition(appointment.Status, to) {
		return apperrors.NewInvalidTransition(string(appointment.Status), string(to))
	}
	appointment.Status = to
	return nil
}

// validateCreate collects every missing required field into a single
// field-keyed ValidationError instead of failing on the first one.
func validateCreate(req *model.CreateAppointmentRequest) error {
	v := apperrors.NewValidation()
	if req.PatientID == uuid.Nil {
		v.Add("patient", "patient is required")
	}
	if req.WorkerID == uuid.Nil {
		v.Add("worker", "worker is required")
	}
	if req.ServiceID == uuid.Nil {
		v.Add("service", "service is required")
	}
	if req.Date.IsZero() {
		v.Add("date", "date is required")
	}
	validateTimeOfDay(v, req.Time)
	if v.HasErrors() {
		return v
	}
	return nil
}

// validateUpdated re-validates the record after update fields are applied.
func validateUpdated(appointment *model.Appointment) error {
	v := apperrors.NewValidation()
	if appointment.PatientID == uuid.Nil {
		v.Add("patient", "patient is required")
	}
	if appointment.WorkerID == uuid.Nil {
		v.Add("worker", "worker is required")
	}
	if appointment.ServiceID == uuid.Nil {
		v.Add("service", "service is required")
	}
	if appointment.Date.IsZero() {
		v.Add("date", "date is required")
	}
	validateTimeOfDay(v, appointment.Time)
	if v.HasErrors() {
		return v
	}
	return nil
}

func validateTimeOfDay(v *apperrors.ValidationError, value string) {
	if value == "" {
		v.Add("time", "time is required")
		return
	}
	if _, err := time.Parse("15:04", value); err != nil {
		v.Add("time", "time must be in HH:MM form")
	}
}

// uniqueAddonIDs drops duplicate selections, preserving order.
func uniqueAddonIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
