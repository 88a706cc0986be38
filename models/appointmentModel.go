package models

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by the record stores when no record matches the given ID.
var ErrNotFound = errors.New("record not found")

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// AppointmentStatuses lists every accepted appointment status.
var AppointmentStatuses = []AppointmentStatus{StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled}

// IsValid reports whether s is one of the enumerated statuses. Any valid status may
// follow any other; there is no transition table.
func (s AppointmentStatus) IsValid() bool {
	for _, status := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Appointment model. Doctor fields are a copy of the doctor's listing at booking time.
type Appointment struct {
	ID              string            `gorm:"primaryKey;column:id" json:"id" bson:"id"`
	PatientName     string            `gorm:"column:patient_name;not null" json:"patientName" bson:"patientName"`
	PatientEmail    string            `gorm:"column:patient_email;not null;index" json:"patientEmail" bson:"patientEmail"`
	PatientPhone    string            `gorm:"column:patient_phone" json:"patientPhone,omitempty" bson:"patientPhone,omitempty"`
	DoctorID        string            `gorm:"column:doctor_id;not null;index" json:"doctorId" bson:"doctorId"`
	DoctorName      string            `gorm:"column:doctor_name;not null" json:"doctorName" bson:"doctorName"`
	DoctorSpecialty string            `gorm:"column:doctor_specialty;not null" json:"doctorSpecialty" bson:"doctorSpecialty"`
	AppointmentDate string            `gorm:"column:appointment_date;not null" json:"appointmentDate" bson:"appointmentDate"`
	AppointmentTime string            `gorm:"column:appointment_time;not null" json:"appointmentTime" bson:"appointmentTime"`
	ConsultationFee float64           `gorm:"column:consultation_fee;not null;check:consultation_fee >= 0" json:"consultationFee" bson:"consultationFee"`
	PaymentMethod   PaymentMethod     `gorm:"column:payment_method;check:payment_method IN ('card', 'upi');not null" json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus   PaymentStatus     `gorm:"column:payment_status;check:payment_status IN ('pending', 'completed', 'failed');not null" json:"paymentStatus" bson:"paymentStatus"`
	Status          AppointmentStatus `gorm:"column:status;check:status IN ('scheduled', 'completed', 'cancelled', 'rescheduled');not null;index" json:"status" bson:"status"`
	Notes           string            `gorm:"column:notes" json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"column:created_at;index" json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time         `gorm:"column:updated_at" json:"updatedAt" bson:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// SearchFields returns the text the admin search runs over.
func (a Appointment) SearchFields() []string {
	return []string{a.PatientName, a.DoctorName, a.DoctorSpecialty}
}

func (a Appointment) StatusOrDefault() string {
	if a.Status == "" {
		return string(StatusScheduled)
	}
	return string(a.Status)
}

// PriorityOrDefault reports false: appointments carry no priority.
func (a Appointment) PriorityOrDefault() (string, bool) {
	return "", false
}

// SortDate is the booked date, not the creation time.
func (a Appointment) SortDate() (time.Time, bool) {
	return ParseDate(a.AppointmentDate)
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AppointmentChanges is the set of fields an update may write. ID, patient email and
// doctor ID are never written after creation.
type AppointmentChanges struct {
	Status    *AppointmentStatus
	Notes     *string
	UpdatedAt time.Time
}
