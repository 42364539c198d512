package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	appointmentRepo "github.com/petservice-marketplace/PSM-BookingService/internal/infra/storage/appointment"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/eventbus"
	"github.com/petservice-marketplace/PSM-BookingService/internal/integrations/groomerservice"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/appointments/models"
	"github.com/petservice-marketplace/PSM-BookingService/internal/service/identity"
)

type fakeRepo struct {
	getByIDFn       func(ctx context.Context, id string) (*domain.Appointment, error)
	getByGroomerFn  func(ctx context.Context, filter domain.GroomerAppointmentsFilter) ([]*domain.Appointment, error)
	getByCustomerFn func(ctx context.Context, customerID string) ([]*domain.Appointment, error)
	getByMonthFn    func(ctx context.Context, groomerID string, month, year int) ([]*domain.Appointment, error)
	existsLeftFn    func(ctx context.Context, groomerID, customerID string) (bool, error)
	updateDatesFn   func(ctx context.Context, id string, start, end time.Time) error
	updateStatusFn  func(ctx context.Context, id string, status domain.Status) error
	deleteFn        func(ctx context.Context, id string) error

	updateStatusCalls int
	updateDatesCalls  int
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetByGroomer(ctx context.Context, filter domain.GroomerAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.getByGroomerFn(ctx, filter)
}

func (f *fakeRepo) GetByCustomer(ctx context.Context, customerID string) ([]*domain.Appointment, error) {
	return f.getByCustomerFn(ctx, customerID)
}

func (f *fakeRepo) GetByGroomerAndMonth(ctx context.Context, groomerID string, month, year int) ([]*domain.Appointment, error) {
	return f.getByMonthFn(ctx, groomerID, month, year)
}

func (f *fakeRepo) ExistsLeft(ctx context.Context, groomerID, customerID string) (bool, error) {
	return f.existsLeftFn(ctx, groomerID, customerID)
}

func (f *fakeRepo) UpdateDates(ctx context.Context, id string, start, end time.Time) error {
	f.updateDatesCalls++
	if f.updateDatesFn != nil {
		return f.updateDatesFn(ctx, id, start, end)
	}
	return nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	f.updateStatusCalls++
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeIdentity struct {
	validateErr    error
	customerExists bool
	customerErr    error
	groomerExists  bool
	groomerErr     error
}

func (f *fakeIdentity) ValidateParticipants(ctx context.Context, customerID, groomerID string) (*groomerservice.Groomer, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return &groomerservice.Groomer{ID: groomerID, Capacity: 5}, nil
}

func (f *fakeIdentity) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	return f.customerExists, f.customerErr
}

func (f *fakeIdentity) GroomerExists(ctx context.Context, groomerID string) (bool, error) {
	return f.groomerExists, f.groomerErr
}

type fakeEnricher struct {
	groomers map[string]*groomerservice.Groomer
	err      error
}

func (f *fakeEnricher) ResolveGroomers(ctx context.Context, appointments []*domain.Appointment) (map[string]*groomerservice.Groomer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groomers, nil
}

type fakeEvents struct {
	published []eventbus.Event
}

func (f *fakeEvents) Publish(ctx context.Context, event eventbus.Event) error {
	f.published = append(f.published, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func stubAppointment(status domain.Status) *domain.Appointment {
	return &domain.Appointment{
		ID:            "4be63cbd-21ea-4f90-bd0c-2f5e0a3f8f11",
		CustomerID:    "c1a9f8f2-8b54-4b57-9b2a-77f1a1c2d3e4",
		GroomerID:     "9d2f3a4b-5c6d-4e7f-8a9b-0c1d2e3f4a5b",
		StartDate:     time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
		Status:        status,
		Pets:          []domain.Pet{{Type: domain.PetTypeDogs, Name: "Шарик", Gender: domain.PetGenderMale, Age: 2}},
		TotalPrice:    decimal.NewFromInt(3500),
		PriceTier:     "standard",
		TransactionID: "7f8e9d0c-1b2a-4c3d-8e5f-6a7b8c9d0e1f",
	}
}

func TestGetByID_RoundTripAndDelete(t *testing.T) {
	created := stubAppointment(domain.StatusAwaiting)
	stored := map[string]*domain.Appointment{created.ID: created}

	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			appointment, ok := stored[id]
			if !ok {
				return nil, appointmentRepo.ErrAppointmentNotFound
			}
			return appointment, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			if _, ok := stored[id]; !ok {
				return appointmentRepo.ErrAppointmentNotFound
			}
			delete(stored, id)
			return nil
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	// Чтение возвращает запись в том виде, в каком она была сохранена
	resp, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, created.CustomerID, resp.CustomerID)
	assert.Equal(t, created.GroomerID, resp.GroomerID)
	assert.Equal(t, "2026-09-01", resp.StartDate)
	assert.Equal(t, "2026-09-04", resp.EndDate)
	require.Len(t, resp.Pets, 1)
	assert.Equal(t, "Шарик", resp.Pets[0].Name)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	// После удаления запись больше не находится
	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_RejectsBackwardTransition(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusStaying), nil
		},
	}
	events := &fakeEvents{}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, events, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "id", &models.UpdateStatusRequest{Status: "awaiting"})
	require.ErrorIs(t, err, ErrIncorrectStatusFlow)

	assert.Zero(t, repo.updateStatusCalls)
	assert.Empty(t, events.published)
}

func TestUpdateStatus_ForwardTransition(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusAwaiting), nil
		},
	}
	events := &fakeEvents{}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, events, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "id", &models.UpdateStatusRequest{Status: "staying"})
	require.NoError(t, err)

	assert.Equal(t, "staying", resp.Status)
	assert.Equal(t, 1, repo.updateStatusCalls)
	require.Len(t, events.published, 1)
	assert.Equal(t, "appointment.status_changed", events.published[0].Type)
	assert.Equal(t, "staying", events.published[0].Status)
}

func TestUpdateStatus_SelfTransitionAllowed(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusLeft), nil
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "id", &models.UpdateStatusRequest{Status: "left"})
	require.NoError(t, err)
	assert.Equal(t, "left", resp.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusAwaiting), nil
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "id", &models.UpdateStatusRequest{Status: "cancelled"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_PublishesEvent(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusAwaiting), nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	events := &fakeEvents{}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, events, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "id"))
	require.Len(t, events.published, 1)
	assert.Equal(t, "appointment.deleted", events.published[0].Type)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	err := svc.Delete(context.Background(), "id")
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateDates_OnlyAwaiting(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusStaying), nil
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	_, err := svc.UpdateDates(context.Background(), "id", &models.UpdateDatesRequest{
		StartDate: "2026-09-05",
		EndDate:   "2026-09-07",
	})
	require.ErrorIs(t, err, ErrNotReschedulable)
	assert.Zero(t, repo.updateDatesCalls)
}

func TestUpdateDates_InvalidRange(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusAwaiting), nil
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	_, err := svc.UpdateDates(context.Background(), "id", &models.UpdateDatesRequest{
		StartDate: "2026-09-07",
		EndDate:   "2026-09-05",
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUpdateDates_Success(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return stubAppointment(domain.StatusAwaiting), nil
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	resp, err := svc.UpdateDates(context.Background(), "id", &models.UpdateDatesRequest{
		StartDate: "2026-09-05",
		EndDate:   "2026-09-07",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-05", resp.StartDate)
	assert.Equal(t, "2026-09-07", resp.EndDate)
	assert.Equal(t, 1, repo.updateDatesCalls)
}

func TestGetCustomerAppointments_EnrichedView(t *testing.T) {
	appointment := stubAppointment(domain.StatusLeft)
	repo := &fakeRepo{
		getByCustomerFn: func(ctx context.Context, customerID string) ([]*domain.Appointment, error) {
			return []*domain.Appointment{appointment}, nil
		},
	}
	enricher := &fakeEnricher{groomers: map[string]*groomerservice.Groomer{
		appointment.GroomerID: {ID: appointment.GroomerID, Name: "Салон Пушистик", PictureURL: "http://cdn/p.jpg"},
	}}
	svc := NewService(repo, &fakeIdentity{customerExists: true}, enricher, &fakeEvents{}, nopLogger{})

	resp, err := svc.GetCustomerAppointments(context.Background(), appointment.CustomerID)
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	got := resp.Appointments[0]
	assert.Equal(t, "Салон Пушистик", got.GroomerName)
	assert.Equal(t, "http://cdn/p.jpg", got.GroomerPictureURL)
	assert.Equal(t, []string{"Шарик"}, got.PetNames)
	assert.Equal(t, "2026-09-01", got.StartDate)
}

func TestGetCustomerAppointments_CustomerNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeIdentity{customerExists: false}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	_, err := svc.GetCustomerAppointments(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetMonthlyAppointments_InvalidMonth(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeIdentity{groomerExists: true}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	_, err := svc.GetMonthlyAppointments(context.Background(), "g", &models.MonthlyAppointmentsRequest{Month: 13, Year: 2026})
	require.ErrorIs(t, err, ErrInvalidMonth)

	_, err = svc.GetMonthlyAppointments(context.Background(), "g", &models.MonthlyAppointmentsRequest{Month: 0, Year: 2026})
	require.ErrorIs(t, err, ErrInvalidMonth)
}

func TestGetGroomerAppointments_GroomerNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeIdentity{groomerExists: false}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	_, err := svc.GetGroomerAppointments(context.Background(), "g", nil)
	require.ErrorIs(t, err, ErrGroomerNotFound)
}

func TestHasCompletedStay(t *testing.T) {
	repo := &fakeRepo{
		existsLeftFn: func(ctx context.Context, groomerID, customerID string) (bool, error) {
			return true, nil
		},
	}
	svc := NewService(repo, &fakeIdentity{}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	resp, err := svc.HasCompletedStay(context.Background(), &models.StayedCustomerRequest{
		CustomerID: "c",
		GroomerID:  "g",
	})
	require.NoError(t, err)
	assert.True(t, resp.HasStayed)
}

func TestHasCompletedStay_CustomerNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeIdentity{validateErr: identity.ErrCustomerNotFound}, &fakeEnricher{}, &fakeEvents{}, nopLogger{})

	_, err := svc.HasCompletedStay(context.Background(), &models.StayedCustomerRequest{
		CustomerID: "c",
		GroomerID:  "g",
	})
	require.ErrorIs(t, err, ErrCustomerNotFound)
}
