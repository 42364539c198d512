package check_stayed_customer

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные ID участников"
	msgCustomerNotFound   = "клиент не найден"
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

// Handle POST /api/v1/appointments/stayed
// Используется сервисом отзывов для проверки права клиента оставить отзыв
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.StayedCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/stayed - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if uuid.Validate(req.CustomerID) != nil || uuid.Validate(req.GroomerID) != nil {
		h.logger.Warn("POST /appointments/stayed - Invalid participant IDs: customer_id=%s, groomer_id=%s",
			req.CustomerID, req.GroomerID)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.service.HasCompletedStay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments/stayed - Customer not found: customer_id=%s", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, appointments.ErrGroomerNotFound):
			h.logger.Warn("POST /appointments/stayed - Groomer not found: groomer_id=%s", req.GroomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		default:
			h.logger.Error("POST /appointments/stayed - Failed to check stay: customer_id=%s, groomer_id=%s, error=%v",
				req.CustomerID, req.GroomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/stayed - Stay checked: customer_id=%s, groomer_id=%s, has_stayed=%t",
		req.CustomerID, req.GroomerID, result.HasStayed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
