package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bellitaspa/agenda-api/internal/model"
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	WorkerRepository interface {
		Create(ctx context.Context, worker *model.Worker) error
		Get(ctx context.Context, id uuid.UUID) (*model.Worker, error)
		Update(ctx context.Context, worker *model.Worker) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Worker, error)
	}

	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service, treatmentIDs []uuid.UUID) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		Update(ctx context.Context, service *model.Service, treatmentIDs *[]uuid.UUID) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Service, error)
	}

	TreatmentRepository interface {
		Create(ctx context.Context, treatment *model.Treatment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Treatment, error)
		Update(ctx context.Context, treatment *model.Treatment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Treatment, error)
	}

	AddonRepository interface {
		Create(ctx context.Context, addon *model.Addon) error
		Get(ctx context.Context, id uuid.UUID) (*model.Addon, error)
		Update(ctx context.Context, addon *model.Addon) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Addon, error)
	}

	RecordRepository interface {
		GetByPatient(ctx context.Context, patientID uuid.UUID) (*model.ClinicalRecord, error)
		Get(ctx context.Context, id uuid.UUID) (*model.ClinicalRecord, error)
		Create(ctx context.Context, record *model.ClinicalRecord) error
		Update(ctx context.Context, record *model.ClinicalRecord) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.ClinicalRecord, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment, event *model.OutboxEvent) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment, event *model.OutboxEvent) error
		Delete(ctx context.Context, id uuid.UUID, event *model.OutboxEvent) error
		List(ctx context.Context) ([]*model.Appointment, error)
	}

	OutboxRepository interface {
		CreateTx(ctx context.Context, tx *sqlx.Tx, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
