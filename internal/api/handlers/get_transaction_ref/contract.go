package get_transaction_ref

import (
	"context"

	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetTransactionRef(ctx context.Context, id string) (*models.TransactionRefResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
