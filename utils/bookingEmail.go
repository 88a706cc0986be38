package utils

import (
	"context"
	"fmt"
	"strings"

	"MediMaga/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailConfig holds the SMTP settings. An empty Host keeps the mailer in mock mode.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// BookingMailer renders the booking confirmation. In mock mode it only logs what would be sent.
type BookingMailer struct {
	config MailConfig
	dialer *gomail.Dialer
}

func NewBookingMailer(config MailConfig) *BookingMailer {
	mailer := &BookingMailer{config: config}
	if config.Host != "" {
		mailer.dialer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	}
	return mailer
}

func (m *BookingMailer) NotifyBooked(_ context.Context, appointment models.Appointment) {
	phone := appointment.PatientPhone
	if phone == "" {
		phone = "Not provided"
	}

	GetLogger().Info("Mock booking emails",
		zap.String("patient", appointment.PatientName),
		zap.String("email", appointment.PatientEmail),
		zap.String("phone", phone),
		zap.String("doctor", appointment.DoctorName),
		zap.String("specialty", appointment.DoctorSpecialty),
		zap.String("date", appointment.AppointmentDate),
		zap.String("time", appointment.AppointmentTime),
		zap.Float64("fee", appointment.ConsultationFee),
		zap.String("paymentMethod", string(appointment.PaymentMethod)),
		zap.Strings("wouldSend", []string{
			"Confirmation email to patient",
			"Notification email to doctor",
			"Appointment reminder email",
		}))

	if m.dialer == nil {
		return
	}

	msg := BookingConfirmationMessage(m.config.From, appointment)
	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			GetLogger().Error("Failed to send booking confirmation",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}()
}

// BookingConfirmationMessage builds the confirmation mail sent to the patient.
func BookingConfirmationMessage(from string, appointment models.Appointment) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", appointment.PatientEmail)
	msg.SetHeader("Subject", "Your appointment with "+appointment.DoctorName+" is confirmed")
	msg.SetBody("text/plain", bookingConfirmationBody(appointment))
	return msg
}

func bookingConfirmationBody(appointment models.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", appointment.PatientName)
	fmt.Fprintf(&b, "Your appointment has been booked.\n\n")
	fmt.Fprintf(&b, "Doctor: %s", appointment.DoctorName)
	if appointment.DoctorSpecialty != "" {
		fmt.Fprintf(&b, " (%s)", appointment.DoctorSpecialty)
	}
	fmt.Fprintf(&b, "\nDate: %s\nTime: %s\n", appointment.AppointmentDate, appointment.AppointmentTime)
	fmt.Fprintf(&b, "Consultation fee: ₹%.2f (%s, %s)\n", appointment.ConsultationFee,
		appointment.PaymentMethod, appointment.PaymentStatus)
	fmt.Fprintf(&b, "Booking reference: %s\n", appointment.ID)
	return b.String()
}
