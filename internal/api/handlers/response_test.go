package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Date string `json:"date" validate:"required"`
	Days []int  `json:"days" validate:"max=7"`
}

func TestDecodeJSON(t *testing.T) {
	var ok sampleRequest
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2024-06-10","days":[1,2]}`))
	require.NoError(t, DecodeJSON(r, &ok))
	assert.Equal(t, "2024-06-10", ok.Date)

	var garbled sampleRequest
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":`))
	assert.Error(t, DecodeJSON(r, &garbled))

	var missing sampleRequest
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"days":[]}`))
	err := DecodeJSON(r, &missing)
	require.Error(t, err)
	field, found := FirstInvalidField(err)
	assert.True(t, found)
	assert.Equal(t, "date", field)
}

func TestRespondFieldError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondFieldError(rec, http.StatusUnprocessableEntity, "falta la dirección", "address", "required")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Error: "falta la dirección", Field: "address", Reason: "required"}, body)
}

func TestRespondInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInternalError)
}
