package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// Service проверяет существование участников записи в peer-реестрах
type Service struct {
	customerClient CustomerServiceClient
	groomerClient  GroomerServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса валидации
func NewService(
	customerClient CustomerServiceClient,
	groomerClient GroomerServiceClient,
	logger Logger,
) *Service {
	return &Service{
		customerClient: customerClient,
		groomerClient:  groomerClient,
		logger:         logger,
	}
}

// ValidateParticipants проверяет существование клиента и грумера
// Обе проверки выполняются параллельно, ответ ждет завершения обеих:
// латентность валидации равна максимуму из двух вызовов, а не их сумме.
// При успехе возвращает карточку грумера, чтобы вызывающая сторона
// могла использовать заявленную вместимость без повторного обращения
func (s *Service) ValidateParticipants(ctx context.Context, customerID, groomerID string) (*groomerservice.Groomer, error) {
	var (
		customerExists bool
		groomer        *groomerservice.Groomer
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		exists, err := s.customerClient.Exists(gctx, customerID)
		if err != nil {
			return fmt.Errorf("%w: customer check: %v", ErrInternal, err)
		}
		customerExists = exists
		return nil
	})

	g.Go(func() error {
		result, err := s.groomerClient.GetGroomer(gctx, groomerID)
		if err != nil && !errors.Is(err, groomerservice.ErrGroomerNotFound) {
			return fmt.Errorf("%w: groomer check: %v", ErrInternal, err)
		}
		groomer = result
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("ValidateParticipants: registry call failed: customer=%s, groomer=%s: %v",
			customerID, groomerID, err)
		return nil, err
	}

	if !customerExists {
		s.logger.Warn("ValidateParticipants: customer=%s not found", customerID)
		return nil, ErrCustomerNotFound
	}
	if groomer == nil {
		s.logger.Warn("ValidateParticipants: groomer=%s not found", groomerID)
		return nil, ErrGroomerNotFound
	}

	return groomer, nil
}

// CustomerExists проверяет существование клиента
func (s *Service) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	exists, err := s.customerClient.Exists(ctx, customerID)
	if err != nil {
		return false, fmt.Errorf("%w: customer check: %v", ErrInternal, err)
	}
	return exists, nil
}

// GroomerExists проверяет существование грумера
func (s *Service) GroomerExists(ctx context.Context, groomerID string) (bool, error) {
	_, err := s.groomerClient.GetGroomer(ctx, groomerID)
	if errors.Is(err, groomerservice.ErrGroomerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: groomer check: %v", ErrInternal, err)
	}
	return true, nil
}
