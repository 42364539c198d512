package enrichment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

type fakeResolver struct {
	mu        sync.Mutex
	delay     time.Duration
	failFor   string
	calls     map[string]int
	inFlight  atomic.Int32
	maxSeen   atomic.Int32
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{calls: map[string]int{}}
}

func (f *fakeResolver) GetGroomer(ctx context.Context, groomerID string) (*groomerservice.Groomer, error) {
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	// Фиксируем максимум одновременных вызовов
	for {
		max := f.maxSeen.Load()
		if current <= max || f.maxSeen.CompareAndSwap(max, current) {
			break
		}
	}

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.calls[groomerID]++
	f.mu.Unlock()

	if groomerID == f.failFor {
		return nil, errors.New("boom")
	}
	return &groomerservice.Groomer{ID: groomerID, Name: "groomer " + groomerID}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func appointmentsFor(groomerIDs ...string) []*domain.Appointment {
	appointments := make([]*domain.Appointment, 0, len(groomerIDs))
	for i, id := range groomerIDs {
		appointments = append(appointments, &domain.Appointment{
			ID:        fmt.Sprintf("appt-%d", i),
			GroomerID: id,
		})
	}
	return appointments
}

func TestResolveGroomers_DistinctOnly(t *testing.T) {
	resolver := newFakeResolver()
	svc := NewService(resolver, nopLogger{})

	// Три записи, но только два различных грумера
	resolved, err := svc.ResolveGroomers(context.Background(), appointmentsFor("g1", "g2", "g1"))
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Equal(t, 1, resolver.calls["g1"])
	assert.Equal(t, 1, resolver.calls["g2"])
	assert.Equal(t, "groomer g1", resolved["g1"].Name)
}

func TestResolveGroomers_BoundedConcurrency(t *testing.T) {
	resolver := newFakeResolver()
	resolver.delay = 20 * time.Millisecond
	svc := NewService(resolver, nopLogger{})

	_, err := svc.ResolveGroomers(context.Background(),
		appointmentsFor("g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8"))
	require.NoError(t, err)

	assert.LessOrEqual(t, resolver.maxSeen.Load(), int32(maxConcurrentLookups))
}

func TestResolveGroomers_SingleFailureAbortsBatch(t *testing.T) {
	resolver := newFakeResolver()
	resolver.failFor = "g2"
	svc := NewService(resolver, nopLogger{})

	resolved, err := svc.ResolveGroomers(context.Background(), appointmentsFor("g1", "g2", "g3"))
	require.ErrorIs(t, err, ErrResolveFailed)
	assert.Nil(t, resolved)
}

func TestResolveGroomers_EmptyBatch(t *testing.T) {
	resolver := newFakeResolver()
	svc := NewService(resolver, nopLogger{})

	resolved, err := svc.ResolveGroomers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resolved)
	assert.Empty(t, resolver.calls)
}
