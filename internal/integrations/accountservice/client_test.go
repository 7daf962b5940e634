package accountservice

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

func TestClient_GetAccount(t *testing.T) {
	id := uuid.New()
	managed := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/accounts/"+id.String(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":%q,"account_type":"gym","plan":"basico","subscription_status":"subscribed","managed_provider_ids":[%q]}`,
			id, managed)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second, logger.NewNop())

	account, err := client.GetAccount(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, "gym", account.AccountType)
	assert.Equal(t, "basico", account.Plan)
	assert.True(t, account.CanManageProvider(managed))
}

func TestClient_GetAccount_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		err     error
	}{
		{
			name:    "not found",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			err:     ErrAccountNotFound,
		},
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			err:     ErrInvalidResponse,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>"))
			},
			err: ErrInvalidResponse,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
			err: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, 50*time.Millisecond, logger.NewNop())
			_, err := client.GetAccount(context.Background(), uuid.New())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
