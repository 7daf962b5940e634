package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings/models"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) GetByID(_ context.Context, _, id uuid.UUID) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{"ok", uuid.NewString(), nil, http.StatusOK},
		{"bad id", "7", nil, http.StatusBadRequest},
		{"not found", uuid.NewString(), bookings.ErrBookingNotFound, http.StatusNotFound},
		{"denied", uuid.NewString(), bookings.ErrAccessDenied, http.StatusForbidden},
		{"internal", uuid.NewString(), bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+tt.id, nil)
			req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
