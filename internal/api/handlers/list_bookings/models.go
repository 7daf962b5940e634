package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
// providerId, requesterId, status, from, to, limit, offset - все опциональны
func ToServiceRequest(callerID uuid.UUID, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{CallerID: callerID}

	var err error
	if req.ProviderID, err = optionalUUID(query, "providerId"); err != nil {
		return nil, err
	}
	if req.RequesterID, err = optionalUUID(query, "requesterId"); err != nil {
		return nil, err
	}

	req.Status = optionalString(query, "status")
	req.From = optionalString(query, "from")
	req.To = optionalString(query, "to")

	if req.Limit, err = optionalUint(query, "limit"); err != nil {
		return nil, err
	}
	if req.Offset, err = optionalUint(query, "offset"); err != nil {
		return nil, err
	}

	return req, nil
}

func optionalString(query url.Values, key string) *string {
	if v := query.Get(key); v != "" {
		return &v
	}
	return nil
}

func optionalUUID(query url.Values, key string) (*uuid.UUID, error) {
	v := query.Get(key)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &id, nil
}

func optionalUint(query url.Values, key string) (uint64, error) {
	v := query.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
