package enrichment

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

// maxConcurrentLookups потолок одновременных обращений к GroomerService
// Ограничение не дает одному списочному запросу развернуться в сотни
// параллельных вызовов, когда у клиента много разных грумеров
const maxConcurrentLookups = 3

// Service обогащает пачки записей отображаемыми атрибутами грумеров
type Service struct {
	resolver GroomerResolver
	logger   Logger
}

// NewService создает новый экземпляр сервиса обогащения
func NewService(resolver GroomerResolver, logger Logger) *Service {
	return &Service{
		resolver: resolver,
		logger:   logger,
	}
}

// ResolveGroomers получает карточки всех различных грумеров пачки записей
// На каждый уникальный ID выполняется ровно один вызов; одновременно
// в полете не более maxConcurrentLookups вызовов, остальные ждут слота.
// Сбой любого одиночного вызова прерывает всю пачку: частичное обогащение
// меняло бы форму ответа per-элементно
func (s *Service) ResolveGroomers(ctx context.Context, appointments []*domain.Appointment) (map[string]*groomerservice.Groomer, error) {
	distinct := distinctGroomerIDs(appointments)
	if len(distinct) == 0 {
		return map[string]*groomerservice.Groomer{}, nil
	}

	s.logger.Info("ResolveGroomers: resolving %d distinct groomers for %d appointments",
		len(distinct), len(appointments))

	var mu sync.Mutex
	resolved := make(map[string]*groomerservice.Groomer, len(distinct))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, groomerID := range distinct {
		groomerID := groomerID
		g.Go(func() error {
			groomer, err := s.resolver.GetGroomer(gctx, groomerID)
			if err != nil {
				return fmt.Errorf("%w: groomer=%s: %v", ErrResolveFailed, groomerID, err)
			}

			mu.Lock()
			resolved[groomerID] = groomer
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("ResolveGroomers: batch aborted: %v", err)
		return nil, err
	}

	return resolved, nil
}

// distinctGroomerIDs собирает множество различных грумеров пачки
// Порядок стабильный: первые вхождения в порядке обхода записей
func distinctGroomerIDs(appointments []*domain.Appointment) []string {
	seen := make(map[string]struct{}, len(appointments))
	ids := make([]string, 0, len(appointments))

	for _, appt := range appointments {
		if _, ok := seen[appt.GroomerID]; ok {
			continue
		}
		seen[appt.GroomerID] = struct{}{}
		ids = append(ids, appt.GroomerID)
	}

	return ids
}
