package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

type fakeService struct {
	resp *models.AvailabilityResponse
	err  error
}

func (f *fakeService) GetAvailability(_ context.Context, providerID uuid.UUID) (*models.AvailabilityResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.resp.ProviderID = providerID
	return f.resp, nil
}

func serve(svc AvailabilityService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/providers/{providerId}/availability", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_ReturnsPattern(t *testing.T) {
	providerID := uuid.New()
	svc := &fakeService{resp: &models.AvailabilityResponse{
		Configured: false,
		Days:       []models.DayDTO{{DayName: "Lunes", TimeSlots: []string{"06:00", "07:00"}}},
	}}

	rec := serve(svc, "/api/v1/providers/"+providerID.String()+"/availability")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, providerID, body.ProviderID)
	assert.False(t, body.Configured)
	assert.Equal(t, "Lunes", body.Days[0].DayName)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/providers/not-a-uuid/availability")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&fakeService{err: errors.New("db down")}, "/api/v1/providers/"+uuid.NewString()+"/availability")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
