package get_monthly_appointments

import (
	"context"

	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetMonthlyAppointments(ctx context.Context, groomerID string, req *models.MonthlyAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
