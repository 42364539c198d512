package create_appointment

import (
	"context"
	"time"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/eventbus"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// CapacityRepository интерфейс репозитория вместимости
type CapacityRepository interface {
	GetForDays(ctx context.Context, groomerID string, days []time.Time) (map[time.Time]int, error)
	AddUnits(ctx context.Context, groomerID string, days []time.Time, units int) error
}

// IdentityValidator интерфейс сервиса валидации участников
type IdentityValidator interface {
	ValidateParticipants(ctx context.Context, customerID, groomerID string) (*groomerservice.Groomer, error)
}

// EventPublisher интерфейс публикации событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
