package reserve_capacity

import (
	"context"
	"time"

	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// CapacityRepository интерфейс репозитория вместимости
type CapacityRepository interface {
	GetForDays(ctx context.Context, groomerID string, days []time.Time) (map[time.Time]int, error)
	AddUnits(ctx context.Context, groomerID string, days []time.Time, units int) error
}

// GroomerServiceClient интерфейс клиента для GroomerService
type GroomerServiceClient interface {
	GetGroomer(ctx context.Context, groomerID string) (*groomerservice.Groomer, error)
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
