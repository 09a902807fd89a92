package domain

import (
	"time"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	StartsAt    time.Time         `json:"starts_at"`
	EndsAt      time.Time         `json:"ends_at"`
	ClientName  *string           `json:"client_name,omitempty"`
	ClientEmail *string           `json:"client_email,omitempty"`
	ClientPhone *string           `json:"client_phone,omitempty"`
	Artist      *string           `json:"artist,omitempty"`
	Status      AppointmentStatus `json:"status"`
	Color       string            `json:"color"`
	CreatedAt   time.Time         `json:"created_at"`
}

type CreateAppointmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
	ClientName  *string   `json:"client_name,omitempty"`
	ClientEmail *string   `json:"client_email,omitempty"`
	ClientPhone *string   `json:"client_phone,omitempty"`
	Artist      *string   `json:"artist,omitempty"`
	Color       *string   `json:"color,omitempty"`
}

// Field nil tidak diubah.
type UpdateAppointmentRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	StartsAt    *time.Time         `json:"starts_at,omitempty"`
	EndsAt      *time.Time         `json:"ends_at,omitempty"`
	ClientName  *string            `json:"client_name,omitempty"`
	ClientEmail *string            `json:"client_email,omitempty"`
	ClientPhone *string            `json:"client_phone,omitempty"`
	Artist      *string            `json:"artist,omitempty"`
	Status      *AppointmentStatus `json:"status,omitempty"`
	Color       *string            `json:"color,omitempty"`
}
