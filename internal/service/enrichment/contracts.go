package enrichment

import (
	"context"

	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// GroomerResolver интерфейс получения карточки грумера
type GroomerResolver interface {
	GetGroomer(ctx context.Context, groomerID string) (*groomerservice.Groomer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
