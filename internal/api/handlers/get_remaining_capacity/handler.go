package get_remaining_capacity

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/petservice-marketplace/PSM-BookingService/internal/api/handlers"
	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	getRemainingCapacity "github.com/petservice-marketplace/PSM-BookingService/internal/usecase/get_remaining_capacity"
)

const (
	msgInvalidGroomerID = "некорректный ID грумера"
	msgInvalidLimit     = "некорректный размер окна доступности"
	msgInvalidFromDate  = "некорректная дата начала окна"
	msgGroomerNotFound  = "грумер не найден"
)

type Handler struct {
	useCase GetRemainingCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetRemainingCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/groomers/{groomerId}/capacity?limit=&from=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groomerID := vars["groomerId"]

	if err := uuid.Validate(groomerID); err != nil {
		h.logger.Warn("GET /groomers/{id}/capacity - Invalid groomer ID: %s", groomerID)
		handlers.RespondBadRequest(w, msgInvalidGroomerID)
		return
	}

	// Размер окна опционален, ноль означает значение по умолчанию
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /groomers/{id}/capacity - Invalid limit: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	// Начало окна опционально, без параметра окно начинается с сегодняшнего дня
	var from time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /groomers/{id}/capacity - Invalid from date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidFromDate)
			return
		}
		from = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getRemainingCapacity.Request{
		GroomerID: groomerID,
		From:      from,
		Limit:     limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRemainingCapacity.ErrGroomerNotFound):
			h.logger.Warn("GET /groomers/{id}/capacity - Groomer not found: groomer_id=%s", groomerID)
			handlers.RespondNotFound(w, msgGroomerNotFound)

		case errors.Is(err, getRemainingCapacity.ErrInvalidInput):
			h.logger.Warn("GET /groomers/{id}/capacity - Invalid limit: groomer_id=%s, limit=%d", groomerID, limit)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /groomers/{id}/capacity - Failed to get capacity: groomer_id=%s, error=%v",
				groomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /groomers/{id}/capacity - Capacity retrieved: groomer_id=%s, days=%d",
		groomerID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
