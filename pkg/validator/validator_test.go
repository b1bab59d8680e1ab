package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellitaspa/agenda-api/internal/model"
	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

func TestValidateCollectsAllViolations(t *testing.T) {
	v := New()

	err := v.Validate(&model.CreatePatientRequest{
		DocumentType: "XX",
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "first_names")
	assert.Contains(t, verr.Fields, "last_names")
	assert.Contains(t, verr.Fields, "document_type")
	assert.Contains(t, verr.Fields, "document_number")
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&model.CreateWorkerRequest{})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "first_names")
	assert.NotContains(t, verr.Fields, "FirstNames")
}

func TestValidateRejectsBadEmail(t *testing.T) {
	v := New()
	email := "not-an-email"

	err := v.Validate(&model.CreatePatientRequest{
		FirstNames:     "Maria",
		LastNames:      "Gomez",
		DocumentType:   "CC",
		DocumentNumber: "1001001001",
		Phone:          "3001234567",
		Email:          &email,
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(&model.CreateWorkerRequest{
		FirstNames:     "Laura",
		LastNames:      "Diaz",
		DocumentType:   "CC",
		DocumentNumber: "2002002002",
		Phone:          "3007654321",
	})
	assert.NoError(t, err)
}
