package model

// WorkerDocumentTypes lists the accepted document types for workers.
// Workers cannot register with a minor's identity card.
var WorkerDocumentTypes = []Choice{
	{Value: DocumentTypeCitizenID, Label: "Cédula de ciudadanía"},
	{Value: DocumentTypeForeignID, Label: "Cédula de extranjería"},
}

// Worker is a staff member that performs appointment services.
type Worker struct {
	Base
	FirstNames     string `db:"first_names" json:"first_names"`
	LastNames      string `db:"last_names" json:"last_names"`
	DocumentType   string `db:"document_type" json:"document_type"`
	DocumentNumber string `db:"document_number" json:"document_number"`
	Phone          string `db:"phone" json:"phone"`
}

type CreateWorkerRequest struct {
	FirstNames     string `json:"first_names" validate:"required,max=100"`
	LastNames      string `json:"last_names" validate:"required,max=100"`
	DocumentType   string `json:"document_type" validate:"required,oneof=CC CE"`
	DocumentNumber string `json:"document_number" validate:"required,max=10"`
	Phone          string `json:"phone" validate:"required,max=20"`
}

type UpdateWorkerRequest struct {
	FirstNames     *string `json:"first_names" validate:"omitempty,max=100"`
	LastNames      *string `json:"last_names" validate:"omitempty,max=100"`
	DocumentType   *string `json:"document_type" validate:"omitempty,oneof=CC CE"`
	DocumentNumber *string `json:"document_number" validate:"omitempty,max=10"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
}
