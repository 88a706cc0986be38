package services

import (
	"context"
	"strings"
	"time"

	"MediMaga/models"
	"MediMaga/monitoring"
	"MediMaga/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAppointmentInput is the booking form payload.
type CreateAppointmentInput struct {
	PatientName     string   `json:"patientName"`
	PatientEmail    string   `json:"patientEmail"`
	PatientPhone    string   `json:"patientPhone"`
	DoctorID        string   `json:"doctorId"`
	DoctorName      string   `json:"doctorName"`
	DoctorSpecialty string   `json:"doctorSpecialty"`
	AppointmentDate string   `json:"appointmentDate"`
	AppointmentTime string   `json:"appointmentTime"`
	ConsultationFee *float64 `json:"consultationFee"`
	PaymentMethod   string   `json:"paymentMethod"`
	PaymentStatus   string   `json:"paymentStatus"`
	Notes           string   `json:"notes"`
}

// UpdateAppointmentInput carries a staff update. Nil fields are left unchanged.
type UpdateAppointmentInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type AppointmentService struct {
	repository AppointmentStore
	notifier   BookingNotifier
	events     EventPublisher
	now        func() time.Time
	newID      func() string
}

func NewAppointmentService(repository AppointmentStore, notifier BookingNotifier, events EventPublisher) *AppointmentService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if events == nil {
		events = noopPublisher{}
	}
	return &AppointmentService{
		repository: repository,
		notifier:   notifier,
		events:     events,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      func() string { return uuid.New().String() },
	}
}

// Create validates the booking, stores it and fires the confirmation side effects.
func (s *AppointmentService) Create(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error) {
	input = input.normalized()
	if err := validateBooking(input); err != nil {
		return nil, err
	}

	paymentStatus := models.PaymentStatus(input.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = models.PaymentCompleted
	}

	now := s.now()
	appointment := &models.Appointment{
		ID:              s.newID(),
		PatientName:     input.PatientName,
		PatientEmail:    input.PatientEmail,
		PatientPhone:    input.PatientPhone,
		DoctorID:        input.DoctorID,
		DoctorName:      input.DoctorName,
		DoctorSpecialty: input.DoctorSpecialty,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		ConsultationFee: *input.ConsultationFee,
		PaymentMethod:   models.PaymentMethod(input.PaymentMethod),
		PaymentStatus:   paymentStatus,
		Status:          models.StatusScheduled,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repository.Create(ctx, appointment); err != nil {
		return nil, storeError(err, "appointment", appointment.ID, "create appointment")
	}

	monitoring.AppointmentsBooked.Inc()
	utils.GetLogger().Info("Appointment booked",
		zap.String("id", appointment.ID),
		zap.String("doctor", appointment.DoctorName),
		zap.String("date", appointment.AppointmentDate),
		zap.String("time", appointment.AppointmentTime))

	s.notifier.NotifyBooked(ctx, *appointment)
	s.events.Publish(ctx, EventAppointmentBooked, appointment)
	return appointment, nil
}

// List returns every appointment, newest first.
func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "appointment", "", "list appointments")
	}
	return appointments, nil
}

// ListByPatient matches the stored (already lower-cased) email exactly.
func (s *AppointmentService) ListByPatient(ctx context.Context, email string) ([]models.Appointment, error) {
	if email == "" {
		return nil, &ValidationError{Field: "patientEmail", Message: "missing required field"}
	}
	appointments, err := s.repository.GetByPatientEmail(ctx, email)
	if err != nil {
		return nil, storeError(err, "appointment", "", "list patient appointments")
	}
	return appointments, nil
}

// UpdateStatus moves an appointment to status, optionally replacing its notes.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id, status string, notes *string) (*models.Appointment, error) {
	return s.Update(ctx, id, UpdateAppointmentInput{Status: &status, Notes: notes})
}

func (s *AppointmentService) Update(ctx context.Context, id string, input UpdateAppointmentInput) (*models.Appointment, error) {
	if input.Status == nil && input.Notes == nil {
		return nil, &ValidationError{Message: "status or notes is required"}
	}

	changes := models.AppointmentChanges{Notes: input.Notes, UpdatedAt: s.now()}
	if input.Status != nil {
		status := models.AppointmentStatus(strings.TrimSpace(*input.Status))
		if !status.IsValid() {
			return nil, &ValidationError{Message: "invalid status"}
		}
		changes.Status = &status
	}

	appointment, err := s.repository.Update(ctx, id, changes)
	if err != nil {
		return nil, storeError(err, "appointment", id, "update appointment")
	}

	if changes.Status != nil {
		monitoring.StatusUpdates.WithLabelValues("appointment", string(*changes.Status)).Inc()
	}
	s.events.Publish(ctx, EventAppointmentUpdated, appointment)
	return appointment, nil
}

// Delete removes one appointment and returns it as it was.
func (s *AppointmentService) Delete(ctx context.Context, id string) (*models.Appointment, error) {
	appointment, err := s.repository.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, "appointment", id, "delete appointment")
	}
	monitoring.RecordsDeleted.WithLabelValues("appointment").Inc()
	s.events.Publish(ctx, EventAppointmentDeleted, appointment)
	return appointment, nil
}

// DeleteAll irreversibly removes every appointment. Callers own any confirmation step.
func (s *AppointmentService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.repository.DeleteAll(ctx)
	if err != nil {
		return 0, storeError(err, "appointment", "", "delete all appointments")
	}
	monitoring.RecordsDeleted.WithLabelValues("appointment").Add(float64(count))
	utils.GetLogger().Warn("All appointments deleted", zap.Int64("count", count))
	s.events.Publish(ctx, EventAppointmentsPurged, map[string]int64{"deletedCount": count})
	return count, nil
}

func (in CreateAppointmentInput) normalized() CreateAppointmentInput {
	in.PatientName = strings.TrimSpace(in.PatientName)
	in.PatientEmail = models.NormalizeEmail(in.PatientEmail)
	in.PatientPhone = strings.TrimSpace(in.PatientPhone)
	in.DoctorID = strings.TrimSpace(in.DoctorID)
	in.DoctorName = strings.TrimSpace(in.DoctorName)
	in.DoctorSpecialty = strings.TrimSpace(in.DoctorSpecialty)
	in.AppointmentDate = strings.TrimSpace(in.AppointmentDate)
	in.AppointmentTime = strings.TrimSpace(in.AppointmentTime)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.PaymentStatus = strings.TrimSpace(in.PaymentStatus)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

// validateBooking checks the required fields first, in form order, then the enumerations.
func validateBooking(in CreateAppointmentInput) error {
	required := []struct {
		name string
		err  error
	}{
		{"patientName", validation.Validate(in.PatientName, validation.Required)},
		{"patientEmail", validation.Validate(in.PatientEmail, validation.Required)},
		{"doctorId", validation.Validate(in.DoctorID, validation.Required)},
		{"doctorName", validation.Validate(in.DoctorName, validation.Required)},
		{"appointmentDate", validation.Validate(in.AppointmentDate, validation.Required)},
		{"appointmentTime", validation.Validate(in.AppointmentTime, validation.Required)},
		{"consultationFee", validation.Validate(in.ConsultationFee, validation.NotNil)},
	}
	for _, field := range required {
		if field.err != nil {
			return &ValidationError{Field: field.name, Message: "missing required field"}
		}
	}

	err := validation.ValidateStruct(&in,
		validation.Field(&in.DoctorSpecialty, validation.Required),
		validation.Field(&in.ConsultationFee, validation.Min(0.0)),
		validation.Field(&in.PaymentMethod, validation.Required,
			validation.In(string(models.PaymentCard), string(models.PaymentUPI))),
		validation.Field(&in.PaymentStatus,
			validation.In(string(models.PaymentPending), string(models.PaymentCompleted), string(models.PaymentFailed))),
	)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}
