package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedErrorsCarryHTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrOpportunityFull.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrApplicationAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrStudentProfileRequired.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotAParticipant.HTTPCode)
}

func TestWithDetailsDoesNotMutatePredefined(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails(map[string]string{"field": "bad"})

	assert.NotNil(t, detailed.Details)
	assert.Nil(t, ErrValidationFailed.Details)
	assert.Equal(t, ErrValidationFailed.Code, detailed.Code)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := Wrap(cause, CodeInternalError, "Failed to reach database", http.StatusInternalServerError)

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, CodeInternalError, wrapped.Code)
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrOpportunityNotFound)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorResponseBodyShape(t *testing.T) {
	resp := ErrorResponse{
		Message: "Opportunity has reached its applicant limit",
		Code:    CodeCapacityReached,
	}

	raw, err := json.Marshal(resp)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Opportunity has reached its applicant limit", decoded["message"])
	assert.Equal(t, string(CodeCapacityReached), decoded["code"])
	_, hasDetails := decoded["details"]
	assert.False(t, hasDetails)
}
