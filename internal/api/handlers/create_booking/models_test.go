package create_booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUseCaseRequest(t *testing.T) {
	requester := uuid.New()
	provider := uuid.New()
	subject := uuid.New()

	req := &CreateBookingRequest{
		ProviderID: provider.String(),
		SubjectID:  subject.String(),
		Date:       "2024-06-10",
		Time:       "09:00",
	}

	got, err := req.ToUseCaseRequest(requester)

	require.NoError(t, err)
	assert.Equal(t, requester, got.RequesterID)
	assert.Equal(t, provider, got.ProviderID)
	assert.Equal(t, subject, got.SubjectID)
}

func TestToUseCaseRequest_InvalidIDs(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateBookingRequest
		wantField string
	}{
		{"provider", CreateBookingRequest{ProviderID: "gym-1", SubjectID: uuid.NewString()}, "providerId"},
		{"subject", CreateBookingRequest{ProviderID: uuid.NewString(), SubjectID: ""}, "subjectId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got error
			assert.NotPanics(t, func() {
				_, got = tt.req.ToUseCaseRequest(uuid.New())
			})

			var idErr *InvalidIDError
			require.ErrorAs(t, got, &idErr)
			assert.Equal(t, tt.wantField, idErr.Field)
		})
	}
}
