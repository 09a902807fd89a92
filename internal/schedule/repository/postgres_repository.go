package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ridloal/tattoo-studio-backend/internal/platform/logger"
	"github.com/ridloal/tattoo-studio-backend/internal/schedule/domain"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, a *domain.Appointment) error
	UpdateAppointment(ctx context.Context, a *domain.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
	GetAppointmentByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	ListAppointmentsBetween(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)

	// MarkOverdueCompleted menandai janji SCHEDULED yang sudah lewat waktunya
	// sebagai COMPLETED. Mengembalikan jumlah baris yang berubah.
	MarkOverdueCompleted(ctx context.Context, now time.Time) (int64, error)
}

type postgresAppointmentRepository struct {
	db *sql.DB
}

func NewPostgresAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &postgresAppointmentRepository{db: db}
}

const appointmentColumns = `id, title, description, starts_at, ends_at, client_name, client_email, client_phone, artist, status, color, created_at`

func (r *postgresAppointmentRepository) CreateAppointment(ctx context.Context, a *domain.Appointment) error {
	query := `INSERT INTO appointments (title, description, starts_at, ends_at, client_name, client_email, client_phone, artist, status, color, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at`

	a.CreatedAt = time.Now()
	if a.Status == "" {
		a.Status = domain.StatusScheduled // Default status
	}

	err := r.db.QueryRowContext(ctx, query,
		a.Title, nullStr(a.Description), a.StartsAt, a.EndsAt,
		nullStr(a.ClientName), nullStr(a.ClientEmail), nullStr(a.ClientPhone), nullStr(a.Artist),
		a.Status, a.Color, a.CreatedAt,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		logger.Error("CreateAppointment: failed to insert appointment", err)
		return err
	}
	return nil
}

func (r *postgresAppointmentRepository) UpdateAppointment(ctx context.Context, a *domain.Appointment) error {
	query := `UPDATE appointments
              SET title = $1, description = $2, starts_at = $3, ends_at = $4,
                  client_name = $5, client_email = $6, client_phone = $7, artist = $8,
                  status = $9, color = $10
              WHERE id = $11`
	res, err := r.db.ExecContext(ctx, query,
		a.Title, nullStr(a.Description), a.StartsAt, a.EndsAt,
		nullStr(a.ClientName), nullStr(a.ClientEmail), nullStr(a.ClientPhone), nullStr(a.Artist),
		a.Status, a.Color, a.ID,
	)
	if err != nil {
		logger.Error("UpdateAppointment: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *postgresAppointmentRepository) DeleteAppointment(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		logger.Error("DeleteAppointment: exec failed", err)
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *postgresAppointmentRepository) GetAppointmentByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	a, err := scanAppointment(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		logger.Error("GetAppointmentByID: query failed", err)
		return nil, err
	}
	return a, nil
}

func (r *postgresAppointmentRepository) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY starts_at ASC`
	return r.queryAppointments(ctx, query)
}

func (r *postgresAppointmentRepository) ListAppointmentsBetween(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
              WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at ASC`
	return r.queryAppointments(ctx, query, from, to)
}

func (r *postgresAppointmentRepository) MarkOverdueCompleted(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE appointments SET status = $1 WHERE status = $2 AND ends_at < $3`
	res, err := r.db.ExecContext(ctx, query, domain.StatusCompleted, domain.StatusScheduled, now)
	if err != nil {
		logger.Error("MarkOverdueCompleted: exec failed", err)
		return 0, err
	}
	rowsAffected, _ := res.RowsAffected()
	return rowsAffected, nil
}

func (r *postgresAppointmentRepository) queryAppointments(ctx context.Context, query string, args ...interface{}) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("queryAppointments: query failed", err)
		return nil, err
	}
	defer rows.Close()

	appointments := []domain.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			logger.Error("queryAppointments: scan failed", err)
			return nil, err
		}
		appointments = append(appointments, *a)
	}
	return appointments, rows.Err()
}

func scanAppointment(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var a domain.Appointment
	var description, clientName, clientEmail, clientPhone, artist sql.NullString
	err := scan(&a.ID, &a.Title, &description, &a.StartsAt, &a.EndsAt,
		&clientName, &clientEmail, &clientPhone, &artist, &a.Status, &a.Color, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Description = strPtr(description)
	a.ClientName = strPtr(clientName)
	a.ClientEmail = strPtr(clientEmail)
	a.ClientPhone = strPtr(clientPhone)
	a.Artist = strPtr(artist)
	return &a, nil
}

func nullStr(s *string) sql.NullString {
	if s != nil {
		return sql.NullString{String: *s, Valid: true}
	}
	return sql.NullString{}
}

func strPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}
