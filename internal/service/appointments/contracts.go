package appointments

import (
	"context"
	"time"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/eventbus"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByGroomer(ctx context.Context, filter domain.GroomerAppointmentsFilter) ([]*domain.Appointment, error)
	GetByCustomer(ctx context.Context, customerID string) ([]*domain.Appointment, error)
	GetByGroomerAndMonth(ctx context.Context, groomerID string, month, year int) ([]*domain.Appointment, error)
	ExistsLeft(ctx context.Context, groomerID, customerID string) (bool, error)
	UpdateDates(ctx context.Context, id string, start, end time.Time) error
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

// IdentityValidator интерфейс сервиса валидации участников
type IdentityValidator interface {
	ValidateParticipants(ctx context.Context, customerID, groomerID string) (*groomerservice.Groomer, error)
	CustomerExists(ctx context.Context, customerID string) (bool, error)
	GroomerExists(ctx context.Context, groomerID string) (bool, error)
}

// GroomerEnricher интерфейс сервиса обогащения атрибутами грумеров
type GroomerEnricher interface {
	ResolveGroomers(ctx context.Context, appointments []*domain.Appointment) (map[string]*groomerservice.Groomer, error)
}

// EventPublisher интерфейс публикации событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
