package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	appointmentRepo "github.com/petservice-marketplace/PSM-BookingService/internal/infra/storage/appointment"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/eventbus"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/identity"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/ptr"
)

// Service сервис для работы с записями на груминг
type Service struct {
	appointmentRepo AppointmentRepository
	identity        IdentityValidator
	enricher        GroomerEnricher
	events          EventPublisher
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	identity IdentityValidator,
	enricher GroomerEnricher,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		identity:        identity,
		enricher:        enricher,
		events:          events,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetTransactionRef получает платёжную ссылку записи
func (s *Service) GetTransactionRef(ctx context.Context, id string) (*models.TransactionRefResponse, error) {
	s.logger.Info("GetTransactionRef: fetching transaction ref for appointment id=%s", id)

	appointment, err := s.getAppointment(ctx, "GetTransactionRef", id)
	if err != nil {
		return nil, err
	}

	return &models.TransactionRefResponse{
		AppointmentID: appointment.ID,
		TransactionID: appointment.TransactionID,
	}, nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	appointment, err := s.getAppointment(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found during deletion", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.publishEvent(ctx, "appointment.deleted", appointment, appointment.Status)

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// UpdateStatus переводит запись в новый статус
// Запрещены только переходы назад: staying -> awaiting и left -> staying
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	newStatus, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointment, err := s.getAppointment(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	// Переход валидируется по статусу из свежего чтения, а не по данным клиента
	if !domain.CanTransition(appointment.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%s",
			appointment.Status, newStatus, id)
		return nil, ErrIncorrectStatusFlow
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appointment.Status = newStatus
	s.publishEvent(ctx, "appointment.status_changed", appointment, newStatus)

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	return models.FromDomainAppointment(appointment), nil
}

// UpdateDates переносит запись на другие даты
// Перенос доступен только до заселения, пока запись в статусе awaiting
func (s *Service) UpdateDates(ctx context.Context, id string, req *models.UpdateDatesRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateDates: rescheduling appointment id=%s to %s - %s", id, req.StartDate, req.EndDate)

	start, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		s.logger.Warn("UpdateDates: invalid start date=%s for appointment id=%s", req.StartDate, id)
		return nil, fmt.Errorf("%w: invalid start date", ErrInvalidInput)
	}

	end, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		s.logger.Warn("UpdateDates: invalid end date=%s for appointment id=%s", req.EndDate, id)
		return nil, fmt.Errorf("%w: invalid end date", ErrInvalidInput)
	}

	if end.Before(start) {
		s.logger.Warn("UpdateDates: end date %s is before start date %s for appointment id=%s",
			req.EndDate, req.StartDate, id)
		return nil, ErrInvalidDateRange
	}

	appointment, err := s.getAppointment(ctx, "UpdateDates", id)
	if err != nil {
		return nil, err
	}

	if !appointment.CanBeRescheduled() {
		s.logger.Warn("UpdateDates: appointment id=%s cannot be rescheduled, status=%s", id, appointment.Status)
		return nil, ErrNotReschedulable
	}

	if err := s.appointmentRepo.UpdateDates(ctx, id, start, end); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateDates: appointment id=%s not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateDates: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDates - repository error: %v", ErrInternal, err)
	}

	appointment.StartDate = start
	appointment.EndDate = end

	s.logger.Info("UpdateDates: successfully rescheduled appointment id=%s", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetGroomerAppointments получает записи грумера
// Опционально фильтрует по статусу
func (s *Service) GetGroomerAppointments(ctx context.Context, groomerID string, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetGroomerAppointments: fetching appointments for groomer=%s, status=%v", groomerID, status)

	filter := domain.GroomerAppointmentsFilter{GroomerID: groomerID}
	if status != nil {
		domainStatus, err := domain.ParseStatus(*status)
		if err != nil {
			s.logger.Warn("GetGroomerAppointments: invalid status=%s for groomer=%s", *status, groomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = ptr.Ptr(domainStatus)
	}

	if err := s.ensureGroomerExists(ctx, "GetGroomerAppointments", groomerID); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.GetByGroomer(ctx, filter)
	if err != nil {
		s.logger.Error("GetGroomerAppointments: repository error for groomer=%s: %v", groomerID, err)
		return nil, fmt.Errorf("%w: GetGroomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGroomerAppointments: successfully fetched %d appointments for groomer=%s",
		len(appointments), groomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetMonthlyAppointments получает записи грумера, заканчивающиеся в указанном месяце
func (s *Service) GetMonthlyAppointments(ctx context.Context, groomerID string, req *models.MonthlyAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetMonthlyAppointments: fetching appointments for groomer=%s, month=%d, year=%d",
		groomerID, req.Month, req.Year)

	if req.Month < 1 || req.Month > 12 {
		s.logger.Warn("GetMonthlyAppointments: invalid month=%d for groomer=%s", req.Month, groomerID)
		return nil, ErrInvalidMonth
	}
	if req.Year < 1 {
		s.logger.Warn("GetMonthlyAppointments: invalid year=%d for groomer=%s", req.Year, groomerID)
		return nil, fmt.Errorf("%w: invalid year", ErrInvalidInput)
	}

	if err := s.ensureGroomerExists(ctx, "GetMonthlyAppointments", groomerID); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.GetByGroomerAndMonth(ctx, groomerID, req.Month, req.Year)
	if err != nil {
		s.logger.Error("GetMonthlyAppointments: repository error for groomer=%s: %v", groomerID, err)
		return nil, fmt.Errorf("%w: GetMonthlyAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMonthlyAppointments: successfully fetched %d appointments for groomer=%s",
		len(appointments), groomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetCustomerAppointments получает записи клиента, обогащённые карточками грумеров
func (s *Service) GetCustomerAppointments(ctx context.Context, customerID string) (*models.CustomerAppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%s", customerID)

	exists, err := s.identity.CustomerExists(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: failed to check customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - customer check failed: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("GetCustomerAppointments: customer=%s not found", customerID)
		return nil, ErrCustomerNotFound
	}

	appointments, err := s.appointmentRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	groomers, err := s.enricher.ResolveGroomers(ctx, appointments)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: failed to resolve groomers for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - enrichment failed: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: successfully fetched %d appointments for customer=%s",
		len(appointments), customerID)
	return models.FromEnrichedAppointments(appointments, groomers), nil
}

// HasCompletedStay проверяет, что у клиента есть завершённое пребывание у грумера
// Используется сервисом отзывов: оставить отзыв может только клиент со статусом left
func (s *Service) HasCompletedStay(ctx context.Context, req *models.StayedCustomerRequest) (*models.StayedCustomerResponse, error) {
	s.logger.Info("HasCompletedStay: checking stay for customer=%s at groomer=%s", req.CustomerID, req.GroomerID)

	if _, err := s.identity.ValidateParticipants(ctx, req.CustomerID, req.GroomerID); err != nil {
		switch {
		case errors.Is(err, identity.ErrCustomerNotFound):
			s.logger.Warn("HasCompletedStay: customer=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		case errors.Is(err, identity.ErrGroomerNotFound):
			s.logger.Warn("HasCompletedStay: groomer=%s not found", req.GroomerID)
			return nil, ErrGroomerNotFound
		default:
			s.logger.Error("HasCompletedStay: participant validation failed: %v", err)
			return nil, fmt.Errorf("%w: HasCompletedStay - participant validation failed: %v", ErrInternal, err)
		}
	}

	hasStayed, err := s.appointmentRepo.ExistsLeft(ctx, req.GroomerID, req.CustomerID)
	if err != nil {
		s.logger.Error("HasCompletedStay: repository error for customer=%s, groomer=%s: %v",
			req.CustomerID, req.GroomerID, err)
		return nil, fmt.Errorf("%w: HasCompletedStay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("HasCompletedStay: customer=%s, groomer=%s, hasStayed=%t", req.CustomerID, req.GroomerID, hasStayed)
	return &models.StayedCustomerResponse{HasStayed: hasStayed}, nil
}

// Вспомогательные методы

// getAppointment читает запись и маппит ошибки репозитория на ошибки сервиса
func (s *Service) getAppointment(ctx context.Context, op, id string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appointment, nil
}

// ensureGroomerExists проверяет существование грумера в GroomerService
func (s *Service) ensureGroomerExists(ctx context.Context, op, groomerID string) error {
	exists, err := s.identity.GroomerExists(ctx, groomerID)
	if err != nil {
		s.logger.Error("%s: failed to check groomer=%s: %v", op, groomerID, err)
		return fmt.Errorf("%w: %s - groomer check failed: %v", ErrInternal, op, err)
	}
	if !exists {
		s.logger.Warn("%s: groomer=%s not found", op, groomerID)
		return ErrGroomerNotFound
	}
	return nil
}

// publishEvent публикует событие жизненного цикла
// Публикация best-effort: ошибка шины не проваливает исходный запрос
func (s *Service) publishEvent(ctx context.Context, eventType string, appointment *domain.Appointment, status domain.Status) {
	if s.events == nil {
		return
	}

	event := eventbus.Event{
		Type:          eventType,
		AppointmentID: appointment.ID,
		GroomerID:     appointment.GroomerID,
		CustomerID:    appointment.CustomerID,
		Status:        string(status),
		OccurredAt:    time.Now().UTC(),
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("publishEvent: failed to publish %s for appointment id=%s: %v",
			eventType, appointment.ID, err)
	}
}
