package get_groomer_appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments"
)

const (
	msgInvalidGroomerID = "некорректный ID грумера"
	msgInvalidStatus    = "некорректный статус записи"
	msgGroomerNotFound  = "грумер не найден"
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

// Handle GET /api/v1/groomers/{groomerId}/appointments?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groomerID := vars["groomerId"]

	if err := uuid.Validate(groomerID); err != nil {
		h.logger.Warn("GET /groomers/{id}/appointments - Invalid groomer ID: %s", groomerID)
		handlers.RespondBadRequest(w, msgInvalidGroomerID)
		return
	}

	// Фильтр по статусу опционален
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.GetGroomerAppointments(r.Context(), groomerID, status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrGroomerNotFound):
			h.logger.Warn("GET /groomers/{id}/appointments - Groomer not found: groomer_id=%s", groomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /groomers/{id}/appointments - Invalid status filter: groomer_id=%s", groomerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /groomers/{id}/appointments - Failed to get appointments: groomer_id=%s, error=%v",
				groomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /groomers/{id}/appointments - Appointments retrieved: groomer_id=%s, count=%d",
		groomerID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
