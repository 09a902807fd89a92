package service

import (
	"context"
	"testing"
	"time"

	"github.com/ridloal/tattoo-studio-backend/internal/schedule/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/repository"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScheduleService_CreateAppointment(t *testing.T) {
	ctx := context.TODO()
	start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	t.Run("creates with SCHEDULED status and the default color", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("CreateAppointment", ctx, mock.AnythingOfType("*domain.Appointment")).Return(nil).Once()

		a, err := svc.CreateAppointment(ctx, domain.CreateAppointmentRequest{
			Title:    "Fechamento de braco",
			StartsAt: start,
			EndsAt:   start.Add(3 * time.Hour),
		})

		assert.NoError(t, err)
		assert.Equal(t, "mock-appointment-id", a.ID)
		assert.Equal(t, domain.StatusScheduled, a.Status)
		assert.Equal(t, "#8B5CF6", a.Color)
		repo.AssertExpectations(t)
	})

	t.Run("honors an explicit color", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("CreateAppointment", ctx, mock.AnythingOfType("*domain.Appointment")).Return(nil).Once()

		color := "#EF4444"
		a, err := svc.CreateAppointment(ctx, domain.CreateAppointmentRequest{
			Title:    "Retoque",
			StartsAt: start,
			EndsAt:   start.Add(time.Hour),
			Color:    &color,
		})

		assert.NoError(t, err)
		assert.Equal(t, "#EF4444", a.Color)
	})

	t.Run("rejects a range that does not end after it starts", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)

		for _, end := range []time.Time{start, start.Add(-time.Hour)} {
			a, err := svc.CreateAppointment(ctx, domain.CreateAppointmentRequest{
				Title:    "Retoque",
				StartsAt: start,
				EndsAt:   end,
			})
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
			assert.Nil(t, a)
		}
		repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})
}

func TestScheduleService_UpdateAppointment(t *testing.T) {
	ctx := context.TODO()
	start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	existing := func() *domain.Appointment {
		return &domain.Appointment{
			ID:       "appt-1",
			Title:    "Fechamento de braco",
			StartsAt: start,
			EndsAt:   start.Add(3 * time.Hour),
			Status:   domain.StatusScheduled,
			Color:    "#8B5CF6",
		}
	}

	t.Run("marks an appointment as cancelled", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("GetAppointmentByID", ctx, "appt-1").Return(existing(), nil).Once()
		repo.On("UpdateAppointment", ctx, mock.AnythingOfType("*domain.Appointment")).Return(nil).Once()

		cancelled := domain.StatusCancelled
		a, err := svc.UpdateAppointment(ctx, "appt-1", domain.UpdateAppointmentRequest{Status: &cancelled})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, a.Status)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("GetAppointmentByID", ctx, "appt-1").Return(existing(), nil).Once()

		bogus := domain.AppointmentStatus("PAUSED")
		a, err := svc.UpdateAppointment(ctx, "appt-1", domain.UpdateAppointmentRequest{Status: &bogus})

		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, a)
		repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("rejects a move that inverts the time range", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("GetAppointmentByID", ctx, "appt-1").Return(existing(), nil).Once()

		newStart := start.Add(5 * time.Hour)
		a, err := svc.UpdateAppointment(ctx, "appt-1", domain.UpdateAppointmentRequest{StartsAt: &newStart})

		assert.ErrorIs(t, err, ErrInvalidTimeRange)
		assert.Nil(t, a)
	})

	t.Run("unknown appointment propagates not-found", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("GetAppointmentByID", ctx, "ghost").Return(nil, repository.ErrAppointmentNotFound).Once()

		a, err := svc.UpdateAppointment(ctx, "ghost", domain.UpdateAppointmentRequest{})

		assert.ErrorIs(t, err, repository.ErrAppointmentNotFound)
		assert.Nil(t, a)
	})
}

func TestScheduleService_ListAppointmentsForDay(t *testing.T) {
	ctx := context.TODO()
	repo := new(mocks.MockAppointmentRepository)
	svc := NewScheduleService(repo)

	day := time.Date(2025, 6, 10, 16, 45, 0, 0, time.UTC)
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	repo.On("ListAppointmentsBetween", ctx, from, to).Return([]domain.Appointment{{ID: "appt-1"}}, nil).Once()

	appointments, err := svc.ListAppointmentsForDay(ctx, day)

	assert.NoError(t, err)
	assert.Len(t, appointments, 1)
	repo.AssertExpectations(t)
}

func TestScheduleService_ProcessOverdueAppointments(t *testing.T) {
	ctx := context.TODO()

	t.Run("delegates to the repository with the current time", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("MarkOverdueCompleted", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()

		svc.ProcessOverdueAppointments(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("a repository error is swallowed, the job just logs", func(t *testing.T) {
		repo := new(mocks.MockAppointmentRepository)
		svc := NewScheduleService(repo)
		repo.On("MarkOverdueCompleted", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError).Once()

		svc.ProcessOverdueAppointments(ctx)

		repo.AssertExpectations(t)
	})
}
