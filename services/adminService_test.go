package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"MediMaga/admin"
	"MediMaga/repositories"
)

func TestAdminServiceStats(t *testing.T) {
	ctx := context.Background()
	appointments := repositories.NewMemoryAppointmentRepository()
	contacts := repositories.NewMemoryContactRepository()

	booking, _, _ := newTestAppointmentService(appointments)
	past := validBooking()
	past.AppointmentDate = "2024-01-05"
	future := validBooking()
	future.AppointmentDate = "2024-01-20"
	broken := validBooking()
	broken.AppointmentDate = "next tuesday"
	for _, in := range []CreateAppointmentInput{past, future, broken} {
		if _, err := booking.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	contactService := newTestContactService(contacts)
	high := validContact()
	high.Priority = "high"
	_, _ = contactService.Submit(ctx, high)
	_, _ = contactService.Submit(ctx, validContact())

	service := NewAdminService(appointments, contacts)
	service.now = func() time.Time { return fixedNow }

	stats, err := service.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := admin.Stats{
		TotalContacts:        2,
		NewContacts:          2,
		HighPriorityContacts: 1,
		TotalAppointments:    3,
		UpcomingAppointments: 1,
	}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestAdminServiceQueryAppointments(t *testing.T) {
	ctx := context.Background()
	appointments := repositories.NewMemoryAppointmentRepository()
	booking, _, _ := newTestAppointmentService(appointments)

	cardio := validBooking()
	derm := validBooking()
	derm.DoctorName = "Dr. Iyer"
	derm.DoctorSpecialty = "Dermatology"
	a, _ := booking.Create(ctx, cardio)
	b, _ := booking.Create(ctx, derm)
	_, _ = booking.UpdateStatus(ctx, a.ID, "cancelled", nil)

	service := NewAdminService(appointments, repositories.NewMemoryContactRepository())

	q, _ := admin.ParseQuery("derma", "", "", "")
	got, err := service.QueryAppointments(ctx, q)
	if err != nil {
		t.Fatalf("QueryAppointments() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("search result = %+v", got)
	}

	q, _ = admin.ParseQuery("", "cancelled", "", "")
	got, _ = service.QueryAppointments(ctx, q)
	if len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("status filter result = %+v", got)
	}
}

func TestAdminServiceStorageFailure(t *testing.T) {
	service := NewAdminService(failingAppointmentStore{}, repositories.NewMemoryContactRepository())

	var storageErr *StorageError
	if _, err := service.Stats(context.Background()); !errors.As(err, &storageErr) {
		t.Errorf("Stats() error = %v, want StorageError", err)
	}
	if _, err := service.QueryAppointments(context.Background(), admin.Query{}); !errors.As(err, &storageErr) {
		t.Errorf("QueryAppointments() error = %v, want StorageError", err)
	}
}

// TestBookingLifecycle walks a booking from creation to cancellation the way the
// frontend and the admin dashboard use the services.
func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	appointments := repositories.NewMemoryAppointmentRepository()
	contacts := repositories.NewMemoryContactRepository()
	booking, notifier, _ := newTestAppointmentService(appointments)
	dashboard := NewAdminService(appointments, contacts)
	dashboard.now = func() time.Time { return fixedNow }

	input := validBooking()
	input.PatientEmail = "Asha@Example.com"
	created, err := booking.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(notifier.booked) != 1 {
		t.Errorf("confirmation not sent")
	}

	mine, _ := booking.ListByPatient(ctx, "asha@example.com")
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("ListByPatient() = %+v", mine)
	}

	stats, _ := dashboard.Stats(ctx)
	if stats.TotalAppointments != 1 || stats.UpcomingAppointments != 1 {
		t.Errorf("Stats() before completion = %+v", stats)
	}

	if _, err := booking.UpdateStatus(ctx, created.ID, "completed", nil); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	stats, _ = dashboard.Stats(ctx)
	if stats.CompletedAppointments != 1 {
		t.Errorf("Stats() after completion = %+v", stats)
	}

	if _, err := booking.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	mine, _ = booking.ListByPatient(ctx, "asha@example.com")
	if len(mine) != 0 {
		t.Errorf("appointment still listed after delete")
	}
	var notFound *NotFoundError
	if _, err := booking.UpdateStatus(ctx, created.ID, "scheduled", nil); !errors.As(err, &notFound) {
		t.Errorf("UpdateStatus() after delete error = %v, want NotFoundError", err)
	}
}

func TestServiceClocksAreUTC(t *testing.T) {
	clocks := map[string]func() time.Time{
		"admin":       NewAdminService(repositories.NewMemoryAppointmentRepository(), repositories.NewMemoryContactRepository()).now,
		"appointment": NewAppointmentService(repositories.NewMemoryAppointmentRepository(), nil, nil).now,
		"contact":     NewContactService(repositories.NewMemoryContactRepository(), nil).now,
	}
	for name, now := range clocks {
		if loc := now().Location(); loc != time.UTC {
			t.Errorf("%s service clock location = %v, want UTC", name, loc)
		}
	}
}
