package get_remaining_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

type fakeCapacityRepo struct {
	records   []domain.CapacityRecord
	lastLimit int
}

func (f *fakeCapacityRepo) GetWindow(ctx context.Context, groomerID string, from time.Time, limit int) ([]domain.CapacityRecord, error) {
	f.lastLimit = limit
	return f.records, nil
}

type fakeGroomerClient struct {
	groomer *groomerservice.Groomer
	err     error
}

func (f *fakeGroomerClient) GetGroomer(ctx context.Context, groomerID string) (*groomerservice.Groomer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groomer, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(capacity *fakeCapacityRepo, client *fakeGroomerClient, now time.Time) *UseCase {
	uc := NewUseCase(capacity, client, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestGetRemainingCapacity_FillsMissingDays(t *testing.T) {
	today := day(2026, time.September, 1)
	capacity := &fakeCapacityRepo{records: []domain.CapacityRecord{
		{GroomerID: "g", Day: today, BookedUnits: 2},
		{GroomerID: "g", Day: today.AddDate(0, 0, 2), BookedUnits: 5},
	}}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 5}}

	uc := newTestUseCase(capacity, client, today)

	resp, err := uc.Execute(context.Background(), &Request{GroomerID: uuid.NewString(), Limit: 3})
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	assert.Equal(t, "2026-09-01", resp.Days[0].Day)
	assert.Equal(t, 2, resp.Days[0].BookedUnits)
	assert.Equal(t, 3, resp.Days[0].RemainingUnits)

	// День без записи в хранилище отдается с нулевой занятостью
	assert.Equal(t, "2026-09-02", resp.Days[1].Day)
	assert.Zero(t, resp.Days[1].BookedUnits)
	assert.Equal(t, 5, resp.Days[1].RemainingUnits)

	assert.Equal(t, "2026-09-03", resp.Days[2].Day)
	assert.Equal(t, 5, resp.Days[2].BookedUnits)
	assert.Zero(t, resp.Days[2].RemainingUnits)
}

func TestGetRemainingCapacity_ExplicitFromDate(t *testing.T) {
	capacity := &fakeCapacityRepo{}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 3}}

	// Запрошенная дата начала окна перекрывает сегодняшний день провайдера времени
	uc := newTestUseCase(capacity, client, day(2026, time.September, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		From:      day(2026, time.October, 15),
		Limit:     2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, "2026-10-15", resp.Days[0].Day)
	assert.Equal(t, "2026-10-16", resp.Days[1].Day)
}

func TestGetRemainingCapacity_DefaultLimit(t *testing.T) {
	capacity := &fakeCapacityRepo{}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 3}}

	uc := newTestUseCase(capacity, client, day(2026, time.September, 1))

	resp, err := uc.Execute(context.Background(), &Request{GroomerID: uuid.NewString()})
	require.NoError(t, err)

	assert.Len(t, resp.Days, domain.DefaultCapacityWindowDays)
	assert.Equal(t, domain.DefaultCapacityWindowDays, capacity.lastLimit)
}

func TestGetRemainingCapacity_LimitTooLarge(t *testing.T) {
	capacity := &fakeCapacityRepo{}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 3}}

	uc := newTestUseCase(capacity, client, day(2026, time.September, 1))

	_, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		Limit:     domain.MaxCapacityWindowDays + 1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetRemainingCapacity_GroomerNotFound(t *testing.T) {
	capacity := &fakeCapacityRepo{}
	client := &fakeGroomerClient{err: groomerservice.ErrGroomerNotFound}

	uc := newTestUseCase(capacity, client, day(2026, time.September, 1))

	_, err := uc.Execute(context.Background(), &Request{GroomerID: uuid.NewString()})
	require.ErrorIs(t, err, ErrGroomerNotFound)
}
