package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

const keyPrefix = "availability:"

type cachedDay struct {
	DayName   string   `json:"day_name"`
	TimeSlots []string `json:"time_slots"`
}

type cachedPattern struct {
	Configured bool        `json:"configured"`
	Days       []cachedDay `json:"days"`
}

// Cache кеш недельного расписания провайдеров в Redis
// Хранит и настроенные, и дефолтные расписания: флаг Configured отличает их
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кеш. ttl <= 0 отключает кеширование (Get всегда промах, Set ничего не делает)
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(providerID uuid.UUID) string {
	return keyPrefix + providerID.String()
}

// Get возвращает расписание из кеша. found=false при промахе
func (c *Cache) Get(ctx context.Context, providerID uuid.UUID) (pattern domain.WeeklyPattern, configured bool, found bool, err error) {
	if c.ttl <= 0 {
		return nil, false, false, nil
	}

	data, err := c.client.Get(ctx, key(providerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, false, nil
	}
	if err != nil {
		return nil, false, false, fmt.Errorf("%w: get %s: %v", ErrCache, providerID, err)
	}

	var cached cachedPattern
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, false, fmt.Errorf("%w: decode %s: %v", ErrCache, providerID, err)
	}

	pattern = make(domain.WeeklyPattern, 0, len(cached.Days))
	for _, d := range cached.Days {
		day := domain.AvailabilityDay{
			DayName:   domain.DayName(d.DayName),
			TimeSlots: make([]types.TimeString, len(d.TimeSlots)),
		}
		for i, s := range d.TimeSlots {
			day.TimeSlots[i] = types.TimeString(s)
		}
		pattern = append(pattern, day)
	}

	return pattern, cached.Configured, true, nil
}

// Set сохраняет расписание в кеш
func (c *Cache) Set(ctx context.Context, providerID uuid.UUID, pattern domain.WeeklyPattern, configured bool) error {
	if c.ttl <= 0 {
		return nil
	}

	cached := cachedPattern{Configured: configured, Days: make([]cachedDay, 0, len(pattern))}
	for _, d := range pattern {
		slots := make([]string, len(d.TimeSlots))
		for i, s := range d.TimeSlots {
			slots[i] = s.String()
		}
		cached.Days = append(cached.Days, cachedDay{DayName: string(d.DayName), TimeSlots: slots})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCache, providerID, err)
	}

	if err := c.client.Set(ctx, key(providerID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, providerID, err)
	}
	return nil
}

// Invalidate удаляет расписание провайдера из кеша
func (c *Cache) Invalidate(ctx context.Context, providerID uuid.UUID) error {
	if err := c.client.Del(ctx, key(providerID)).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", ErrCache, providerID, err)
	}
	return nil
}
