package add_block

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

type fakeService struct {
	got *models.AddBlockRequest
	err error
}

func (f *fakeService) AddBlock(_ context.Context, req *models.AddBlockRequest) (*models.BlockResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockResponse{
		ID:         uuid.New(),
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Time:       req.Time,
		WholeDay:   req.Time == nil,
		Reason:     req.Reason,
	}, nil
}

func serve(svc AvailabilityService, providerID string, userID *uuid.UUID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/providers/{providerId}/blocks", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/providers/"+providerID+"/blocks", strings.NewReader(body))
	if userID != nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WholeDayBlock(t *testing.T) {
	providerID := uuid.New()
	svc := &fakeService{}

	rec := serve(svc, providerID.String(), &providerID, `{"date":"2024-12-25","reason":"Navidad"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.got.Time)
	assert.Equal(t, providerID, svc.got.CallerID)

	var body models.BlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.WholeDay)
	assert.Equal(t, "Navidad", body.Reason)
}

func TestHandle_SingleSlotBlock(t *testing.T) {
	providerID := uuid.New()
	svc := &fakeService{}

	rec := serve(svc, providerID.String(), &providerID, `{"date":"2024-12-24","time":"18:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got.Time)
	assert.Equal(t, "18:00", *svc.got.Time)
}

func TestHandle_Errors(t *testing.T) {
	userID := uuid.New()
	providerID := uuid.NewString()
	valid := `{"date":"2024-12-25"}`

	tests := []struct {
		name       string
		providerID string
		userID     *uuid.UUID
		body       string
		err        error
		want       int
	}{
		{"bad provider id", "x", &userID, valid, nil, http.StatusBadRequest},
		{"no user", providerID, nil, valid, nil, http.StatusUnauthorized},
		{"missing date", providerID, &userID, `{"reason":"x"}`, nil, http.StatusBadRequest},
		{"denied", providerID, &userID, valid, availability.ErrAccessDenied, http.StatusForbidden},
		{"invalid block", providerID, &userID, valid, availability.ErrInvalidInput, http.StatusBadRequest},
		{"internal", providerID, &userID, valid, availability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.providerID, tt.userID, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
