package get_monthly_appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidGroomerID   = "некорректный ID грумера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMonth       = "некорректный месяц, ожидается значение от 1 до 12"
	msgGroomerNotFound    = "грумер не найден"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/groomers/{groomerId}/appointments/month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groomerID := vars["groomerId"]

	if err := uuid.Validate(groomerID); err != nil {
		h.logger.Warn("POST /groomers/{id}/appointments/month - Invalid groomer ID: %s", groomerID)
		handlers.RespondBadRequest(w, msgInvalidGroomerID)
		return
	}

	var req models.MonthlyAppointmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groomers/{id}/appointments/month - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GetMonthlyAppointments(r.Context(), groomerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrGroomerNotFound):
			h.logger.Warn("POST /groomers/{id}/appointments/month - Groomer not found: groomer_id=%s", groomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, appointments.ErrInvalidMonth), errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /groomers/{id}/appointments/month - Invalid month: groomer_id=%s, month=%d, year=%d",
				groomerID, req.Month, req.Year)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("POST /groomers/{id}/appointments/month - Failed to get appointments: groomer_id=%s, error=%v",
				groomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groomers/{id}/appointments/month - Appointments retrieved: groomer_id=%s, month=%d, year=%d, count=%d",
		groomerID, req.Month, req.Year, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
