package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"MediMaga/models"
)

func appointmentAt(id, email string, createdAt time.Time) *models.Appointment {
	return &models.Appointment{
		ID:           id,
		PatientName:  "Patient " + id,
		PatientEmail: email,
		DoctorID:     "d1",
		DoctorName:   "Dr. Rao",
		Status:       models.StatusScheduled,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestMemoryAppointmentListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepository()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	_ = repo.Create(ctx, appointmentAt("a", "ann@example.com", base))
	_ = repo.Create(ctx, appointmentAt("b", "bob@example.com", base.Add(time.Hour)))
	_ = repo.Create(ctx, appointmentAt("c", "ann@example.com", base.Add(2*time.Hour)))

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if got := ids(all); got != "cba" {
		t.Errorf("GetAll() order = %q, want cba", got)
	}

	ann, err := repo.GetByPatientEmail(ctx, "ann@example.com")
	if err != nil {
		t.Fatalf("GetByPatientEmail() error = %v", err)
	}
	if got := ids(ann); got != "ca" {
		t.Errorf("GetByPatientEmail() = %q, want ca", got)
	}

	none, _ := repo.GetByPatientEmail(ctx, "ANN@example.com")
	if len(none) != 0 {
		t.Errorf("GetByPatientEmail() matched a differently cased email: %v", ids(none))
	}
}

func TestMemoryAppointmentUpdateWritesOnlyChanges(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepository()
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	_ = repo.Create(ctx, appointmentAt("a", "ann@example.com", created))

	status := models.StatusCompleted
	later := created.Add(time.Hour)
	updated, err := repo.Update(ctx, "a", models.AppointmentChanges{Status: &status, UpdatedAt: later})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != models.StatusCompleted || !updated.UpdatedAt.Equal(later) {
		t.Errorf("Update() = %+v", updated)
	}
	if updated.PatientEmail != "ann@example.com" || updated.DoctorID != "d1" || !updated.CreatedAt.Equal(created) {
		t.Errorf("Update() touched immutable fields: %+v", updated)
	}

	// Mutating the returned copy must not reach the store.
	updated.Notes = "tampered"
	all, _ := repo.GetAll(ctx)
	if all[0].Notes != "" {
		t.Errorf("store aliased the returned record")
	}
}

func TestMemoryAppointmentNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepository()

	status := models.StatusCancelled
	if _, err := repo.Update(ctx, "missing", models.AppointmentChanges{Status: &status}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Delete(ctx, "missing"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryAppointmentDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepository()
	now := time.Now()
	_ = repo.Create(ctx, appointmentAt("a", "ann@example.com", now))
	_ = repo.Create(ctx, appointmentAt("b", "bob@example.com", now))

	deleted, err := repo.Delete(ctx, "a")
	if err != nil || deleted.ID != "a" {
		t.Fatalf("Delete() = %v, %v", deleted, err)
	}
	if _, err := repo.Delete(ctx, "a"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	count, err := repo.DeleteAll(ctx)
	if err != nil || count != 1 {
		t.Errorf("DeleteAll() = %d, %v, want 1", count, err)
	}
	count, _ = repo.DeleteAll(ctx)
	if count != 0 {
		t.Errorf("DeleteAll() on empty store = %d, want 0", count)
	}
}

func TestMemoryContactUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContactRepository()
	_ = repo.Create(ctx, &models.Contact{ID: "c1", Name: "Ann", Status: models.ContactNew, Priority: models.PriorityMedium})

	priority := models.PriorityHigh
	updated, err := repo.Update(ctx, "c1", models.ContactChanges{Priority: &priority})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Priority != models.PriorityHigh || updated.Status != models.ContactNew {
		t.Errorf("Update() = %+v", updated)
	}
}

func TestMemoryRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryAppointmentRepository()
	if err := repo.Create(ctx, appointmentAt("a", "ann@example.com", time.Now())); err == nil {
		t.Errorf("Create() with cancelled context succeeded")
	}
}

func ids(appointments []models.Appointment) string {
	var out string
	for _, a := range appointments {
		out += a.ID
	}
	return out
}
