package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus uses the literal four-letter codes on every
// serialization boundary.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PEND"
	AppointmentStatusConfirmed AppointmentStatus = "CONF"
	AppointmentStatusCompleted AppointmentStatus = "REAL"
	AppointmentStatusCancelled AppointmentStatus = "CANC"
)

// AppointmentStatuses lists the valid statuses with display labels,
// served by the lookup endpoint.
var AppointmentStatuses = []Choice{
	{Value: string(AppointmentStatusPending), Label: "Pendiente"},
	{Value: string(AppointmentStatusConfirmed), Label: "Confirmada"},
	{Value: string(AppointmentStatusCompleted), Label: "Realizada"},
	{Value: string(AppointmentStatusCancelled), Label: "Cancelada"},
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment links one patient, one worker and one service, with
// optional add-ons, a lifecycle status and a computed pending balance.
type Appointment struct {
	Base
	PatientID      uuid.UUID         `db:"patient_id" json:"patient_id"`
	WorkerID       uuid.UUID         `db:"worker_id" json:"worker_id"`
	ServiceID      uuid.UUID         `db:"service_id" json:"service_id"`
	AddonIDs       []uuid.UUID       `db:"-" json:"addon_ids"`
	Date           Date              `db:"date" json:"date"`
	Time           string            `db:"time_of_day" json:"time"`
	Notes          string            `db:"notes" json:"notes,omitempty"`
	PendingBalance decimal.Decimal   `db:"pending_balance" json:"pending_balance"`
	Status         AppointmentStatus `db:"status" json:"status"`
}

type CreateAppointmentRequest struct {
	PatientID uuid.UUID   `json:"patient_id"`
	WorkerID  uuid.UUID   `json:"worker_id"`
	ServiceID uuid.UUID   `json:"service_id"`
	AddonIDs  []uuid.UUID `json:"addon_ids"`
	Date      Date        `json:"date"`
	Time      string      `json:"time"`
	Notes     string      `json:"notes"`
}

// UpdateAppointmentRequest carries only the fields the caller wants to
// change; nil means "keep the stored value".
type UpdateAppointmentRequest struct {
	PatientID *uuid.UUID         `json:"patient_id"`
	WorkerID  *uuid.UUID         `json:"worker_id"`
	ServiceID *uuid.UUID         `json:"service_id"`
	AddonIDs  *[]uuid.UUID       `json:"addon_ids"`
	Date      *Date              `json:"date"`
	Time      *string            `json:"time"`
	Notes     *string            `json:"notes"`
	Status    *AppointmentStatus `json:"status"`
}

// ChangesFields reports whether the request touches anything beyond the
// status. Terminal appointments reject such edits.
func (r *UpdateAppointmentRequest) ChangesFields() bool {
	return r.PatientID != nil || r.WorkerID != nil || r.ServiceID != nil ||
		r.AddonIDs != nil || r.Date != nil || r.Time != nil || r.Notes != nil
}

// ChangesSelection reports whether the request changes the priced
// selection, which forces a balance recomputation.
func (r *UpdateAppointmentRequest) ChangesSelection() bool {
	return r.ServiceID != nil || r.AddonIDs != nil
}

// StatusFilterAll is the sentinel that disables status filtering.
const StatusFilterAll = "all"

// AppointmentFilters narrows a listing; zero values mean no filtering.
type AppointmentFilters struct {
	Date   *Date  `form:"date"`
	Status string `form:"status"`
}
