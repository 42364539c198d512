package reserve_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
)

type fakeCapacityRepo struct {
	booked    map[time.Time]int
	getCalls  int
	addCalls  int
	lastUnits int
	lastDays  []time.Time
}

func (f *fakeCapacityRepo) GetForDays(ctx context.Context, groomerID string, days []time.Time) (map[time.Time]int, error) {
	f.getCalls++
	return f.booked, nil
}

func (f *fakeCapacityRepo) AddUnits(ctx context.Context, groomerID string, days []time.Time, units int) error {
	f.addCalls++
	f.lastUnits = units
	f.lastDays = days
	return nil
}

// statefulCapacityRepo хранит занятость в памяти, AddUnits реально накапливает места
type statefulCapacityRepo struct {
	ledger map[time.Time]int
}

func (f *statefulCapacityRepo) GetForDays(ctx context.Context, groomerID string, days []time.Time) (map[time.Time]int, error) {
	booked := make(map[time.Time]int, len(days))
	for _, day := range days {
		booked[day] = f.ledger[day]
	}
	return booked, nil
}

func (f *statefulCapacityRepo) AddUnits(ctx context.Context, groomerID string, days []time.Time, units int) error {
	for _, day := range days {
		f.ledger[day] += units
	}
	return nil
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReserveCapacity_Success(t *testing.T) {
	capacity := &fakeCapacityRepo{booked: map[time.Time]int{
		day(2026, time.September, 1): 2,
	}}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 3}}

	uc := NewUseCase(capacity, client, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		StartDate: day(2026, time.September, 1),
		EndDate:   day(2026, time.September, 3),
		Units:     1,
	})
	require.NoError(t, err)

	assert.True(t, resp.Admitted)
	assert.Equal(t, 2, resp.Days)
	assert.Equal(t, 1, capacity.addCalls)
	assert.Equal(t, 1, capacity.lastUnits)
	require.Len(t, capacity.lastDays, 2)
}

func TestReserveCapacity_AllOrNothing(t *testing.T) {
	// Первый день свободен, второй заполнен до предела
	capacity := &fakeCapacityRepo{booked: map[time.Time]int{
		day(2026, time.September, 2): 3,
	}}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 3}}

	uc := NewUseCase(capacity, client, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		StartDate: day(2026, time.September, 1),
		EndDate:   day(2026, time.September, 3),
		Units:     1,
	})
	require.ErrorIs(t, err, ErrOverCapacity)
	assert.Zero(t, capacity.addCalls)
}

func TestReserveCapacity_SequentialAdmissionsAccumulate(t *testing.T) {
	capacity := &statefulCapacityRepo{ledger: map[time.Time]int{}}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 2}}

	uc := NewUseCase(capacity, client, &fakeTxManager{}, nopLogger{})

	request := func() *Request {
		return &Request{
			GroomerID: uuid.NewString(),
			StartDate: day(2026, time.September, 1),
			EndDate:   day(2026, time.September, 3),
			Units:     1,
		}
	}

	// Первые два резервирования по одному месту доводят занятость до предела
	for i := 0; i < 2; i++ {
		resp, err := uc.Execute(context.Background(), request())
		require.NoError(t, err)
		assert.True(t, resp.Admitted)
	}
	assert.Equal(t, 2, capacity.ledger[day(2026, time.September, 1)])
	assert.Equal(t, 2, capacity.ledger[day(2026, time.September, 2)])

	// Третье получает отказ, занятость не меняется
	_, err := uc.Execute(context.Background(), request())
	require.ErrorIs(t, err, ErrOverCapacity)
	assert.Equal(t, 2, capacity.ledger[day(2026, time.September, 1)])
	assert.Equal(t, 2, capacity.ledger[day(2026, time.September, 2)])
}

func TestReserveCapacity_EmptyDaySet(t *testing.T) {
	capacity := &fakeCapacityRepo{booked: map[time.Time]int{}}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 1}}

	uc := NewUseCase(capacity, client, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		StartDate: day(2026, time.September, 1),
		EndDate:   day(2026, time.September, 1),
		Units:     5,
	})
	require.NoError(t, err)

	// Однодневный визит проходит без чтения и резервирования
	assert.True(t, resp.Admitted)
	assert.Zero(t, resp.Days)
	assert.Zero(t, capacity.getCalls)
	assert.Zero(t, capacity.addCalls)
}

func TestReserveCapacity_InvalidDateRange(t *testing.T) {
	capacity := &fakeCapacityRepo{booked: map[time.Time]int{}}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 1}}

	uc := NewUseCase(capacity, client, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		StartDate: day(2026, time.September, 3),
		EndDate:   day(2026, time.September, 1),
		Units:     1,
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestReserveCapacity_GroomerNotFound(t *testing.T) {
	capacity := &fakeCapacityRepo{booked: map[time.Time]int{}}
	client := &fakeGroomerClient{err: groomerservice.ErrGroomerNotFound}

	uc := NewUseCase(capacity, client, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		StartDate: day(2026, time.September, 1),
		EndDate:   day(2026, time.September, 2),
		Units:     1,
	})
	require.ErrorIs(t, err, ErrGroomerNotFound)
}

func TestReserveCapacity_InvalidUnits(t *testing.T) {
	capacity := &fakeCapacityRepo{booked: map[time.Time]int{}}
	client := &fakeGroomerClient{groomer: &groomerservice.Groomer{ID: "g", Capacity: 1}}

	uc := NewUseCase(capacity, client, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GroomerID: uuid.NewString(),
		StartDate: day(2026, time.September, 1),
		EndDate:   day(2026, time.September, 2),
		Units:     0,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
