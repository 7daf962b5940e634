package get_navigation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/navigation"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/navigation/models"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

type fakeService struct {
	resp *models.NavigationResponse
	err  error
}

func (f *fakeService) GetNavigation(_ context.Context, _ uuid.UUID) (*models.NavigationResponse, error) {
	return f.resp, f.err
}

func serve(svc NavigationService, userID *uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/navigation", nil)
	if userID != nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ReturnsFeatures(t *testing.T) {
	userID := uuid.New()
	svc := &fakeService{resp: &models.NavigationResponse{
		AccountID:   userID,
		AccountType: "coach",
		Plan:        "free",
		Tier:        "premium",
		Trial:       true,
		Features: []models.FeatureDTO{
			{Feature: "schedule", Visibility: "enabled", RequiredTier: "free"},
		},
	}}

	rec := serve(svc, &userID)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.NavigationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Trial)
	require.Len(t, body.Features, 1)
	assert.Equal(t, "enabled", body.Features[0].Visibility)
}

func TestHandle_Errors(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		userID *uuid.UUID
		err    error
		want   int
	}{
		{"no user", nil, nil, http.StatusUnauthorized},
		{"unknown account", &userID, fmt.Errorf("%w: id=%s", navigation.ErrAccountNotFound, userID), http.StatusNotFound},
		{"directory down", &userID, fmt.Errorf("%w: timeout", navigation.ErrAccountDirectory), http.StatusBadGateway},
		{"unexpected", &userID, fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.userID)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
