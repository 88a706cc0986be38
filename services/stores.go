package services

import (
	"context"

	"MediMaga/models"
)

// AppointmentStore persists appointments. Update and Delete return models.ErrNotFound
// when no record has the given ID.
type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetAll(ctx context.Context) ([]models.Appointment, error)
	GetByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error)
	Update(ctx context.Context, id string, changes models.AppointmentChanges) (*models.Appointment, error)
	Delete(ctx context.Context, id string) (*models.Appointment, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ContactStore persists contact messages, with the same not-found contract as AppointmentStore.
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	Update(ctx context.Context, id string, changes models.ContactChanges) (*models.Contact, error)
	Delete(ctx context.Context, id string) (*models.Contact, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// BookingNotifier sends the booking confirmation. It must not fail the booking, so it
// has no error to return.
type BookingNotifier interface {
	NotifyBooked(ctx context.Context, appointment models.Appointment)
}

// EventPublisher emits lifecycle events on a best-effort basis.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload interface{})
}

const (
	EventAppointmentBooked  = "appointment.booked"
	EventAppointmentUpdated = "appointment.updated"
	EventAppointmentDeleted = "appointment.deleted"
	EventAppointmentsPurged = "appointment.purged"
	EventContactSubmitted   = "contact.submitted"
	EventContactUpdated     = "contact.updated"
	EventContactDeleted     = "contact.deleted"
	EventContactsPurged     = "contact.purged"
)

type noopNotifier struct{}

func (noopNotifier) NotifyBooked(context.Context, models.Appointment) {}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, interface{}) {}
