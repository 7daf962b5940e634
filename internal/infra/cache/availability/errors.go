package availability

import "errors"

var (
	// ErrCache возвращается при недоступности Redis или битых данных в кеше
	ErrCache = errors.New("availability.cache: cache error")
)
