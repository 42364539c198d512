package get_remaining_capacity

import (
	"context"
	"time"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// CapacityRepository интерфейс репозитория вместимости
type CapacityRepository interface {
	GetWindow(ctx context.Context, groomerID string, from time.Time, limit int) ([]domain.CapacityRecord, error)
}

// GroomerServiceClient интерфейс клиента для GroomerService
type GroomerServiceClient interface {
	GetGroomer(ctx context.Context, groomerID string) (*groomerservice.Groomer, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
