package services

import (
	"context"
	"strings"
	"time"

	"MediMaga/models"
	"MediMaga/monitoring"
	"MediMaga/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitContactInput is the contact form payload.
type SubmitContactInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Priority   string `json:"priority"`
}

// UpdateContactInput carries a staff update. Nil fields are left unchanged.
type UpdateContactInput struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

type ContactService struct {
	repository ContactStore
	events     EventPublisher
	now        func() time.Time
	newID      func() string
}

func NewContactService(repository ContactStore, events EventPublisher) *ContactService {
	if events == nil {
		events = noopPublisher{}
	}
	return &ContactService{
		repository: repository,
		events:     events,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      func() string { return uuid.New().String() },
	}
}

func (s *ContactService) Submit(ctx context.Context, input SubmitContactInput) (*models.Contact, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Department = strings.TrimSpace(input.Department)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
	input.Priority = strings.TrimSpace(input.Priority)

	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required),
		validation.Field(&input.Email, validation.Required, is.EmailFormat),
		validation.Field(&input.Subject, validation.Required),
		validation.Field(&input.Message, validation.Required),
		validation.Field(&input.Priority, validation.In(
			string(models.PriorityLow), string(models.PriorityMedium), string(models.PriorityHigh))),
	)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	priority := models.Priority(input.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := s.now()
	contact := &models.Contact{
		ID:         s.newID(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Department: input.Department,
		Subject:    input.Subject,
		Message:    input.Message,
		Status:     models.ContactNew,
		Priority:   priority,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repository.Create(ctx, contact); err != nil {
		return nil, storeError(err, "contact", contact.ID, "create contact")
	}

	utils.GetLogger().Info("Contact message received",
		zap.String("id", contact.ID),
		zap.String("subject", contact.Subject))
	s.events.Publish(ctx, EventContactSubmitted, contact)
	return contact, nil
}

// List returns every contact message, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, storeError(err, "contact", "", "list contacts")
	}
	return contacts, nil
}

func (s *ContactService) UpdateStatus(ctx context.Context, id string, input UpdateContactInput) (*models.Contact, error) {
	if input.Status == nil && input.Priority == nil {
		return nil, &ValidationError{Message: "status or priority is required"}
	}

	changes := models.ContactChanges{UpdatedAt: s.now()}
	if input.Status != nil {
		status := models.ContactStatus(strings.TrimSpace(*input.Status))
		if !status.IsValid() {
			return nil, &ValidationError{Message: "invalid status"}
		}
		changes.Status = &status
	}
	if input.Priority != nil {
		priority := models.Priority(strings.TrimSpace(*input.Priority))
		if !priority.IsValid() {
			return nil, &ValidationError{Message: "invalid priority"}
		}
		changes.Priority = &priority
	}

	contact, err := s.repository.Update(ctx, id, changes)
	if err != nil {
		return nil, storeError(err, "contact", id, "update contact")
	}
	if changes.Status != nil {
		monitoring.StatusUpdates.WithLabelValues("contact", string(*changes.Status)).Inc()
	}
	s.events.Publish(ctx, EventContactUpdated, contact)
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) (*models.Contact, error) {
	contact, err := s.repository.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, "contact", id, "delete contact")
	}
	monitoring.RecordsDeleted.WithLabelValues("contact").Inc()
	s.events.Publish(ctx, EventContactDeleted, contact)
	return contact, nil
}

func (s *ContactService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.repository.DeleteAll(ctx)
	if err != nil {
		return 0, storeError(err, "contact", "", "delete all contacts")
	}
	monitoring.RecordsDeleted.WithLabelValues("contact").Add(float64(count))
	utils.GetLogger().Warn("All contacts deleted", zap.Int64("count", count))
	s.events.Publish(ctx, EventContactsPurged, map[string]int64{"deletedCount": count})
	return count, nil
}
