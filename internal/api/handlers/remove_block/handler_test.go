package remove_block

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) RemoveBlock(_ context.Context, _, _ uuid.UUID) error { return f.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		blockID string
		err     error
		want    int
	}{
		{"removed", uuid.NewString(), nil, http.StatusNoContent},
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"denied", uuid.NewString(), availability.ErrAccessDenied, http.StatusForbidden},
		{"internal", uuid.NewString(), availability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/api/v1/blocks/{blockId}", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/blocks/"+tt.blockID, nil)
			req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_NoUser(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/blocks/{blockId}", NewHandler(&fakeService{}, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/blocks/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
