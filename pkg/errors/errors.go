package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries every missing or malformed field of a request,
// keyed by field name, so a caller can surface all problems at once.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = message
	return e
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvalidPriceError signals a missing or negative price encountered during
// balance computation.
type InvalidPriceError struct {
	Entity string
	Reason string
}

func NewInvalidPrice(entity, reason string) *InvalidPriceError {
	return &InvalidPriceError{Entity: entity, Reason: reason}
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price on %s: %s", e.Entity, e.Reason)
}

// ReferenceNotFoundError signals that a patient, worker, service or add-on
// id supplied on an appointment does not resolve in the catalog.
type ReferenceNotFoundError struct {
	Entity string
	ID     string
}

func NewReferenceNotFound(entity, id string) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Entity: entity, ID: id}
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found in catalog", e.Entity, e.ID)
}

// InvalidTransitionError signals a status change not permitted from the
// appointment's current state.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransition(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// AppointmentLockedError signals a field edit attempted on an appointment
// already in a terminal state.
type AppointmentLockedError struct {
	ID     string
	Status string
}

func NewAppointmentLocked(id, status string) *AppointmentLockedError {
	return &AppointmentLockedError{ID: id, Status: status}
}

func (e *AppointmentLockedError) Error() string {
	return fmt.Sprintf("appointment %s is %s and can no longer be edited", e.ID, e.Status)
}

// NotFoundError signals that an operation targets a non-existent record.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// StorageError passes a storage-layer failure through without
// reinterpretation.
type StorageError struct {
	Op  string
	Err error
}

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
