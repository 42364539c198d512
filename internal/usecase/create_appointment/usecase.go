package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/eventbus"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/identity"
)

// UseCase use case для создания записи на груминг
type UseCase struct {
	appointmentRepo AppointmentRepository
	capacityRepo    CapacityRepository
	identity        IdentityValidator
	events          EventPublisher
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	capacityRepo CapacityRepository,
	identity IdentityValidator,
	events EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		capacityRepo:    capacityRepo,
		identity:        identity,
		events:          events,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка и резервирование мест идут в одной сериализуемой транзакции,
// чтобы конкурентные запросы не перебронировали грумера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, groomer=%s, dates=%s - %s, pets=%d",
		req.CustomerID, req.GroomerID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), len(req.Pets))

	// 1. Валидация входных данных, диапазон дат проверяется до обращений к реестрам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Параллельно проверяем клиента и грумера, заодно получаем карточку грумера
	groomer, err := uc.identity.ValidateParticipants(ctx, req.CustomerID, req.GroomerID)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrCustomerNotFound):
			uc.logger.Warn("CreateAppointment: customer=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		case errors.Is(err, identity.ErrGroomerNotFound):
			uc.logger.Warn("CreateAppointment: groomer=%s not found", req.GroomerID)
			return nil, ErrGroomerNotFound
		default:
			uc.logger.Error("CreateAppointment: participant validation failed: %v", err)
			return nil, fmt.Errorf("%w: participant validation failed: %v", ErrInternal, err)
		}
	}

	// 3. Разворачиваем интервал в дни, день отъезда места не занимает
	days := domain.DaysBetween(req.StartDate, req.EndDate)
	units := len(req.Pets)

	var result *domain.Appointment

	// 4. Проверка вместимости и создание записи в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем занятость по дням с блокировкой строк (FOR UPDATE)
		if len(days) > 0 {
			booked, err := uc.capacityRepo.GetForDays(txCtx, req.GroomerID, days)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to get capacity for groomer=%s: %v", req.GroomerID, err)
				return fmt.Errorf("%w: failed to get capacity: %v", ErrInternal, err)
			}

			// 4.2. Все дни должны вмещать питомцев целиком, иначе отказ без резервирования
			for _, day := range days {
				if booked[day]+units > groomer.Capacity {
					uc.logger.Warn("CreateAppointment: groomer=%s is over capacity on %s, %d/%d units taken",
						req.GroomerID, day.Format(domain.DateFormat), booked[day], groomer.Capacity)
					return ErrOverCapacity
				}
			}

			// 4.3. Резервируем места на каждый день
			if err := uc.capacityRepo.AddUnits(txCtx, req.GroomerID, days, units); err != nil {
				uc.logger.Error("CreateAppointment: failed to reserve capacity for groomer=%s: %v", req.GroomerID, err)
				return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
			}
		}

		// 4.4. Создаем запись, платёжная ссылка приходит из checkout-потока
		appointment := &domain.Appointment{
			ID:            uuid.NewString(),
			CustomerID:    req.CustomerID,
			GroomerID:     req.GroomerID,
			StartDate:     domain.DayOf(req.StartDate),
			EndDate:       domain.DayOf(req.EndDate),
			Status:        domain.StatusAwaiting,
			Pets:          req.Pets,
			TotalPrice:    req.TotalPrice,
			PriceTier:     req.PriceTier,
			TransactionID: req.TransactionID,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	uc.publishCreated(ctx, result)

	return &Response{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		GroomerID:     result.GroomerID,
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		Status:        string(result.Status),
		Pets:          result.Pets,
		TotalPrice:    result.TotalPrice,
		PriceTier:     result.PriceTier,
		TransactionID: result.TransactionID,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// publishCreated публикует событие о созданной записи
// Публикация best-effort: ошибка шины не проваливает запрос
func (uc *UseCase) publishCreated(ctx context.Context, appointment *domain.Appointment) {
	if uc.events == nil {
		return
	}

	event := eventbus.Event{
		Type:          "appointment.created",
		AppointmentID: appointment.ID,
		GroomerID:     appointment.GroomerID,
		CustomerID:    appointment.CustomerID,
		Status:        string(appointment.Status),
		OccurredAt:    time.Now().UTC(),
	}

	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateAppointment: failed to publish event for appointment id=%s: %v", appointment.ID, err)
	}
}
