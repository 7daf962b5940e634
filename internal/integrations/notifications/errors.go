package notifications

import "errors"

var (
	// ErrPublish возвращается, когда событие не удалось записать в стрим
	ErrPublish = errors.New("notifications: failed to publish event")
)
