package model

import (
	"time"
)

// Document types accepted for patients.
const (
	DocumentTypeCitizenID  = "CC"
	DocumentTypeIdentityID = "TI"
	DocumentTypeForeignID  = "CE"
)

// PatientDocumentTypes lists the accepted document types with their
// display labels, in the order the lookup endpoint serves them.
var PatientDocumentTypes = []Choice{
	{Value: DocumentTypeCitizenID, Label: "Cédula de ciudadanía"},
	{Value: DocumentTypeIdentityID, Label: "Tarjeta de identidad"},
	{Value: DocumentTypeForeignID, Label: "Cédula de extranjería"},
}

type Patient struct {
	Base
	FirstNames        string  `db:"first_names" json:"first_names"`
	LastNames         string  `db:"last_names" json:"last_names"`
	DocumentType      string  `db:"document_type" json:"document_type"`
	DocumentNumber    string  `db:"document_number" json:"document_number"`
	Phone             string  `db:"phone" json:"phone"`
	Email             *string `db:"email" json:"email,omitempty"`
	Address           *string `db:"address" json:"address,omitempty"`
	BirthDate         Date    `db:"birth_date" json:"birth_date"`
	EmergencyName     *string `db:"emergency_name" json:"emergency_name,omitempty"`
	EmergencyPhone    *string `db:"emergency_phone" json:"emergency_phone,omitempty"`
	MedicalConditions *string `db:"medical_conditions" json:"medical_conditions,omitempty"`
	Allergies         *string `db:"allergies" json:"allergies,omitempty"`
}

type CreatePatientRequest struct {
	FirstNames        string  `json:"first_names" validate:"required,max=100"`
	LastNames         string  `json:"last_names" validate:"required,max=100"`
	DocumentType      string  `json:"document_type" validate:"required,oneof=CC TI CE"`
	DocumentNumber    string  `json:"document_number" validate:"required,max=10"`
	Phone             string  `json:"phone" validate:"required,max=10"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Address           *string `json:"address" validate:"omitempty,max=100"`
	BirthDate         Date    `json:"birth_date"`
	EmergencyName     *string `json:"emergency_name" validate:"omitempty,max=500"`
	EmergencyPhone    *string `json:"emergency_phone" validate:"omitempty,max=10"`
	MedicalConditions *string `json:"medical_conditions"`
	Allergies         *string `json:"allergies"`
}

type UpdatePatientRequest struct {
	FirstNames        *string `json:"first_names" validate:"omitempty,max=100"`
	LastNames         *string `json:"last_names" validate:"omitempty,max=100"`
	DocumentType      *string `json:"document_type" validate:"omitempty,oneof=CC TI CE"`
	DocumentNumber    *string `json:"document_number" validate:"omitempty,max=10"`
	Phone             *string `json:"phone" validate:"omitempty,max=10"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Address           *string `json:"address" validate:"omitempty,max=100"`
	BirthDate         *Date   `json:"birth_date"`
	EmergencyName     *string `json:"emergency_name" validate:"omitempty,max=500"`
	EmergencyPhone    *string `json:"emergency_phone" validate:"omitempty,max=10"`
	MedicalConditions *string `json:"medical_conditions"`
	Allergies         *string `json:"allergies"`
}

func (r *CreatePatientRequest) ToPatient(now time.Time) *Patient {
	return &Patient{
		Base:              Base{CreatedAt: now, UpdatedAt: now},
		FirstNames:        r.FirstNames,
		LastNames:         r.LastNames,
		DocumentType:      r.DocumentType,
		DocumentNumber:    r.DocumentNumber,
		Phone:             r.Phone,
		Email:             r.Email,
		Address:           r.Address,
		BirthDate:         r.BirthDate,
		EmergencyName:     r.EmergencyName,
		EmergencyPhone:    r.EmergencyPhone,
		MedicalConditions: r.MedicalConditions,
		Allergies:         r.Allergies,
	}
}
