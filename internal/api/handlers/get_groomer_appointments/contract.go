package get_groomer_appointments

import (
	"context"

	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetGroomerAppointments(ctx context.Context, groomerID string, status *string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
