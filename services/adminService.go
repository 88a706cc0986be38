package services

import (
	"context"
	"time"

	"MediMaga/admin"
	"MediMaga/models"
)

// AdminService loads snapshots from the stores and runs the admin query engine over them.
type AdminService struct {
	appointments AppointmentStore
	contacts     ContactStore
	now          func() time.Time
}

func NewAdminService(appointments AppointmentStore, contacts ContactStore) *AdminService {
	return &AdminService{
		appointments: appointments,
		contacts:     contacts,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *AdminService) QueryAppointments(ctx context.Context, q admin.Query) ([]models.Appointment, error) {
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "appointment", "", "list appointments")
	}
	return admin.FilterAndSort(appointments, q), nil
}

func (s *AdminService) QueryContacts(ctx context.Context, q admin.Query) ([]models.Contact, error) {
	contacts, err := s.contacts.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "contact", "", "list contacts")
	}
	return admin.FilterAndSort(contacts, q), nil
}

func (s *AdminService) Stats(ctx context.Context) (admin.Stats, error) {
	contacts, err := s.contacts.GetAll(ctx)
	if err != nil {
		return admin.Stats{}, storeError(err, "contact", "", "list contacts")
	}
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return admin.Stats{}, storeError(err, "appointment", "", "list appointments")
	}
	return admin.ComputeStats(contacts, appointments, s.now()), nil
}
