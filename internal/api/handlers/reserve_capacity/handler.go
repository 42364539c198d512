package reserve_capacity

import (
	"errors"
	"net/http"

	"github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers"
	reserveCapacity "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/reserve_capacity"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest     = "некорректные параметры резервирования"
	msgInvalidDateRange   = "дата окончания раньше даты начала"
	msgGroomerNotFound    = "грумер не найден"
	msgOverCapacity       = "у грумера нет свободных мест на выбранные даты"
)

type Handler struct {
	useCase ReserveCapacityUseCase
	logger  Logger
}

func NewHandler(useCase ReserveCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/capacity/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /capacity/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /capacity/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveCapacity.ErrInvalidDateRange):
			h.logger.Warn("POST /capacity/check - Invalid date range: groomer_id=%s, dates=%s - %s",
				req.GroomerID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, reserveCapacity.ErrInvalidInput):
			h.logger.Warn("POST /capacity/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, reserveCapacity.ErrGroomerNotFound):
			h.logger.Warn("POST /capacity/check - Groomer not found: groomer_id=%s", req.GroomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, reserveCapacity.ErrOverCapacity):
			h.logger.Warn("POST /capacity/check - Over capacity: groomer_id=%s, dates=%s - %s, units=%d",
				req.GroomerID, req.StartDate, req.EndDate, req.Units)
			handlers.RespondConflict(w, msgOverCapacity)

		default:
			h.logger.Error("POST /capacity/check - Failed to reserve capacity: groomer_id=%s, error=%v",
				req.GroomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /capacity/check - Capacity reserved: groomer_id=%s, days=%d, units=%d",
		req.GroomerID, result.Days, req.Units)
	handlers.RespondJSON(w, http.StatusOK, result)
}
