package create_appointment

import (
	"errors"
	"net/http"

	"github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers"
	createAppointment "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные данные записи"
	msgInvalidDateRange   = "дата отъезда раньше даты заезда"
	msgCustomerNotFound   = "клиент не найден"
	msgGroomerNotFound    = "грумер не найден"
	msgOverCapacity       = "у грумера нет свободных мест на выбранные даты"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат, цены и питомцев)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidDateRange):
			h.logger.Warn("POST /appointments - Invalid date range: customer_id=%s, groomer_id=%s",
				req.CustomerID, req.GroomerID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createAppointment.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%s", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createAppointment.ErrGroomerNotFound):
			h.logger.Warn("POST /appointments - Groomer not found: groomer_id=%s", req.GroomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, createAppointment.ErrOverCapacity):
			h.logger.Warn("POST /appointments - Over capacity: groomer_id=%s, dates=%s - %s",
				req.GroomerID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgOverCapacity)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%s, groomer_id=%s, error=%v",
				req.CustomerID, req.GroomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, customer_id=%s, groomer_id=%s",
		result.ID, req.CustomerID, req.GroomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
