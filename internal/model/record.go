package model

import (
	"github.com/google/uuid"
)

// ClinicalRecord holds a patient's running observations and
// recommendations. Each patient has at most one; it is provisioned
// automatically the first time the patient books an appointment.
type ClinicalRecord struct {
	Base
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	Observations    *string   `db:"observations" json:"observations,omitempty"`
	Recommendations *string   `db:"recommendations" json:"recommendations,omitempty"`
}

type UpdateClinicalRecordRequest struct {
	Observations    *string `json:"observations"`
	Recommendations *string `json:"recommendations"`
}
