package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/domain"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/repository"
	"github.com/robfig/cron/v3"
)

var (
	ErrInvalidTimeRange = errors.New("appointment must end after it starts")
	ErrInvalidStatus    = errors.New("unknown appointment status")
)

const defaultColor = "#8B5CF6"

type ScheduleService interface {
	CreateAppointment(ctx context.Context, req domain.CreateAppointmentRequest) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req domain.UpdateAppointmentRequest) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	ListAppointmentsForDay(ctx context.Context, day time.Time) ([]domain.Appointment, error)
	ProcessOverdueAppointments(ctx context.Context) // Fungsi untuk scheduler
}

type scheduleServiceImpl struct {
	repo      repository.AppointmentRepository
	scheduler *cron.Cron
}

func NewScheduleService(repo repository.AppointmentRepository) ScheduleService {
	s := &scheduleServiceImpl{
		repo:      repo,
		scheduler: cron.New(cron.WithSeconds()),
	}
	s.initScheduler()
	return s
}

func (s *scheduleServiceImpl) initScheduler() {
	spec := "0 */10 * * * *" // Setiap 10 menit
	s.scheduler.AddFunc(spec, func() {
		// Gunakan context.Background() karena ini adalah background job
		s.ProcessOverdueAppointments(context.Background())
	})
	s.scheduler.Start()
	logger.Info(fmt.Sprintf("Overdue appointment scheduler initialized with spec '%s'", spec))
}

// ProcessOverdueAppointments menandai janji SCHEDULED yang sudah lewat
// waktu selesainya sebagai COMPLETED.
func (s *scheduleServiceImpl) ProcessOverdueAppointments(ctx context.Context) {
	updated, err := s.repo.MarkOverdueCompleted(ctx, time.Now())
	if err != nil {
		logger.Error("ProcessOverdueAppointments: failed to mark overdue appointments", err)
		return
	}
	if updated > 0 {
		logger.Info("ProcessOverdueAppointments: marked %d appointment(s) as completed", updated)
	}
}

func (s *scheduleServiceImpl) CreateAppointment(ctx context.Context, req domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, ErrInvalidTimeRange
	}

	a := &domain.Appointment{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Artist:      req.Artist,
		Status:      domain.StatusScheduled,
		Color:       defaultColor,
	}
	if req.Color != nil {
		a.Color = *req.Color
	}
	if err := s.repo.CreateAppointment(ctx, a); err != nil {
		logger.Error("Svc.CreateAppointment: repo error", err)
		return nil, err
	}
	return a, nil
}

func (s *scheduleServiceImpl) UpdateAppointment(ctx context.Context, id string, req domain.UpdateAppointmentRequest) (*domain.Appointment, error) {
	a, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = req.Description
	}
	if req.StartsAt != nil {
		a.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		a.EndsAt = *req.EndsAt
	}
	if !a.EndsAt.After(a.StartsAt) {
		return nil, ErrInvalidTimeRange
	}
	if req.ClientName != nil {
		a.ClientName = req.ClientName
	}
	if req.ClientEmail != nil {
		a.ClientEmail = req.ClientEmail
	}
	if req.ClientPhone != nil {
		a.ClientPhone = req.ClientPhone
	}
	if req.Artist != nil {
		a.Artist = req.Artist
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		a.Status = *req.Status
	}
	if req.Color != nil {
		a.Color = *req.Color
	}

	if err := s.repo.UpdateAppointment(ctx, a); err != nil {
		logger.Error("Svc.UpdateAppointment: repo error", err)
		return nil, err
	}
	return a, nil
}

func (s *scheduleServiceImpl) DeleteAppointment(ctx context.Context, id string) error {
	return s.repo.DeleteAppointment(ctx, id)
}

func (s *scheduleServiceImpl) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.repo.GetAppointmentByID(ctx, id)
}

func (s *scheduleServiceImpl) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.ListAppointments(ctx)
}

func (s *scheduleServiceImpl) ListAppointmentsForDay(ctx context.Context, day time.Time) ([]domain.Appointment, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)
	return s.repo.ListAppointmentsBetween(ctx, from, to)
}
