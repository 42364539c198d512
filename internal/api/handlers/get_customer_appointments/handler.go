package get_customer_appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgCustomerNotFound  = "клиент не найден"
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

// Handle GET /api/v1/customers/{customerId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID := vars["customerId"]

	if err := uuid.Validate(customerID); err != nil {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid customer ID: %s", customerID)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrCustomerNotFound):
			h.logger.Warn("GET /customers/{id}/appointments - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("GET /customers/{id}/appointments - Failed to get appointments: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/appointments - Appointments retrieved: customer_id=%s, count=%d",
		customerID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
