package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// Request модель запроса на создание бронирования
// Дата и время приходят строками из формы: разбор и ошибки по полям выполняет usecase
type Request struct {
	RequesterID uuid.UUID // ID клиента (из аутентификации)
	ProviderID  uuid.UUID // ID провайдера
	SubjectID   uuid.UUID // ID услуги или занятия
	Date        string    // YYYY-MM-DD в календаре сервиса
	Time        string    // HH:MM
	Address     string    // Обязателен для "A Domicilio"
	Note        *string   // Свободный комментарий (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	ProviderID  uuid.UUID
	SubjectID   uuid.UUID
	ScheduledAt time.Time
	Date        string
	Time        types.TimeString
	Status      domain.BookingStatus
	Note        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
