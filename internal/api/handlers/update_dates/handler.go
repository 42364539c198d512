package update_dates

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
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange     = "дата отъезда раньше даты заезда"
	msgNotFound             = "запись не найдена"
	msgNotReschedulable     = "перенос дат доступен только до заселения"
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

// Handle POST /api/v1/appointments/{appointmentId}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]

	if err := uuid.Validate(appointmentID); err != nil {
		h.logger.Warn("POST /appointments/{id}/dates - Invalid appointment ID: %s", appointmentID)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDates(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/dates - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidDateRange):
			h.logger.Warn("POST /appointments/{id}/dates - Invalid date range: appointment_id=%s, dates=%s - %s",
				appointmentID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, appointments.ErrNotReschedulable):
			h.logger.Warn("POST /appointments/{id}/dates - Appointment cannot be rescheduled: appointment_id=%s",
				appointmentID)
			handlers.RespondBadRequest(w, msgNotReschedulable)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/dates - Invalid dates: appointment_id=%s, dates=%s - %s",
				appointmentID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /appointments/{id}/dates - Failed to update dates: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/dates - Dates updated successfully: appointment_id=%s, dates=%s - %s",
		appointmentID, req.StartDate, req.EndDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
