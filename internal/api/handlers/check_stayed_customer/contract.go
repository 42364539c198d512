package check_stayed_customer

import (
	"context"

	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	HasCompletedStay(ctx context.Context, req *models.StayedCustomerRequest) (*models.StayedCustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
