package identity

import (
	"context"

	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// CustomerServiceClient интерфейс клиента для CustomerService
type CustomerServiceClient interface {
	Exists(ctx context.Context, customerID string) (bool, error)
}

// GroomerServiceClient интерфейс клиента для GroomerService
type GroomerServiceClient interface {
	GetGroomer(ctx context.Context, groomerID string) (*groomerservice.Groomer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
