package reserve_capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	groomerClient "github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// UseCase use case для проверки и резервирования мест грумера
// Используется оркестратором платформы при бронированиях в обход этого сервиса
type UseCase struct {
	capacityRepo  CapacityRepository
	groomerClient GroomerServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	capacityRepo CapacityRepository,
	groomerClient GroomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		capacityRepo:  capacityRepo,
		groomerClient: groomerClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute проверяет вместимость на каждый день интервала и резервирует места
// Отказ строго целиком: при нехватке мест хотя бы на один день ни один день не резервируется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveCapacity: groomer=%s, dates=%s - %s, units=%d",
		req.GroomerID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.Units)

	// 1. Валидация входных данных, диапазон дат проверяется до развертки в дни
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveCapacity: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем карточку грумера с объявленной вместимостью
	groomer, err := uc.groomerClient.GetGroomer(ctx, req.GroomerID)
	if err != nil {
		if errors.Is(err, groomerClient.ErrGroomerNotFound) {
			uc.logger.Warn("ReserveCapacity: groomer=%s not found", req.GroomerID)
			return nil, ErrGroomerNotFound
		}
		uc.logger.Error("ReserveCapacity: failed to get groomer=%s: %v", req.GroomerID, err)
		return nil, fmt.Errorf("%w: failed to get groomer: %v", ErrInternal, err)
	}

	// 3. Разворачиваем интервал в дни, день отъезда места не занимает
	days := domain.DaysBetween(req.StartDate, req.EndDate)

	// Пустой интервал (заезд и отъезд в один день) проходит без резервирования
	if len(days) == 0 {
		uc.logger.Info("ReserveCapacity: empty day set for groomer=%s, nothing to reserve", req.GroomerID)
		return &Response{Admitted: true, Days: 0}, nil
	}

	// 4. Проверка и резервирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booked, err := uc.capacityRepo.GetForDays(txCtx, req.GroomerID, days)
		if err != nil {
			uc.logger.Error("ReserveCapacity: failed to get capacity for groomer=%s: %v", req.GroomerID, err)
			return fmt.Errorf("%w: failed to get capacity: %v", ErrInternal, err)
		}

		for _, day := range days {
			if booked[day]+req.Units > groomer.Capacity {
				uc.logger.Warn("ReserveCapacity: groomer=%s is over capacity on %s, %d/%d units taken",
					req.GroomerID, day.Format(domain.DateFormat), booked[day], groomer.Capacity)
				return ErrOverCapacity
			}
		}

		if err := uc.capacityRepo.AddUnits(txCtx, req.GroomerID, days, req.Units); err != nil {
			uc.logger.Error("ReserveCapacity: failed to reserve capacity for groomer=%s: %v", req.GroomerID, err)
			return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveCapacity: reserved %d units for groomer=%s on %d days", req.Units, req.GroomerID, len(days))
	return &Response{Admitted: true, Days: len(days)}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := uuid.Validate(req.GroomerID); err != nil {
		return fmt.Errorf("%w: groomerId must be a valid UUID", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateRange
	}

	if req.Units < domain.MinRequestedUnits {
		return fmt.Errorf("%w: units must be at least %d", ErrInvalidInput, domain.MinRequestedUnits)
	}

	return nil
}
