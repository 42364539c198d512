package get_remaining_capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	groomerClient "github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// UseCase use case для получения окна доступности грумера по дням
type UseCase struct {
	capacityRepo  CapacityRepository
	groomerClient GroomerServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	capacityRepo CapacityRepository,
	groomerClient GroomerServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		capacityRepo:  capacityRepo,
		groomerClient: groomerClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute возвращает остаток мест грумера на каждый день окна
// Окно начинается с запрошенной даты, по умолчанию с сегодняшнего дня.
// Дни без записей в хранилище отдаются с нулевой занятостью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRemainingCapacity: groomer=%s, limit=%d", req.GroomerID, req.Limit)

	if err := uuid.Validate(req.GroomerID); err != nil {
		uc.logger.Warn("GetRemainingCapacity: invalid groomer id=%s", req.GroomerID)
		return nil, fmt.Errorf("%w: groomerId must be a valid UUID", ErrInvalidInput)
	}

	limit := req.Limit
	if limit == 0 {
		limit = domain.DefaultCapacityWindowDays
	}
	if limit < 0 || limit > domain.MaxCapacityWindowDays {
		uc.logger.Warn("GetRemainingCapacity: invalid limit=%d for groomer=%s", req.Limit, req.GroomerID)
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxCapacityWindowDays)
	}

	groomer, err := uc.groomerClient.GetGroomer(ctx, req.GroomerID)
	if err != nil {
		if errors.Is(err, groomerClient.ErrGroomerNotFound) {
			uc.logger.Warn("GetRemainingCapacity: groomer=%s not found", req.GroomerID)
			return nil, ErrGroomerNotFound
		}
		uc.logger.Error("GetRemainingCapacity: failed to get groomer=%s: %v", req.GroomerID, err)
		return nil, fmt.Errorf("%w: failed to get groomer: %v", ErrInternal, err)
	}

	from := domain.DayOf(uc.timeProvider.Now())
	if !req.From.IsZero() {
		from = domain.DayOf(req.From)
	}

	records, err := uc.capacityRepo.GetWindow(ctx, req.GroomerID, from, limit)
	if err != nil {
		uc.logger.Error("GetRemainingCapacity: failed to get capacity window for groomer=%s: %v", req.GroomerID, err)
		return nil, fmt.Errorf("%w: failed to get capacity window: %v", ErrInternal, err)
	}

	booked := make(map[string]int, len(records))
	for _, record := range records {
		booked[record.Day.Format(domain.DateFormat)] = record.BookedUnits
	}

	resp := &Response{
		GroomerID: req.GroomerID,
		Days:      make([]DayCapacityResponse, 0, limit),
	}

	for i := 0; i < limit; i++ {
		day := from.AddDate(0, 0, i).Format(domain.DateFormat)
		units := booked[day]

		remaining := groomer.Capacity - units
		if remaining < 0 {
			remaining = 0
		}

		resp.Days = append(resp.Days, DayCapacityResponse{
			Day:            day,
			BookedUnits:    units,
			MaxUnits:       groomer.Capacity,
			RemainingUnits: remaining,
		})
	}

	uc.logger.Info("GetRemainingCapacity: returning %d days for groomer=%s", len(resp.Days), req.GroomerID)
	return resp, nil
}
