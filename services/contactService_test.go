package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"MediMaga/models"
	"MediMaga/repositories"
)

func newTestContactService(store ContactStore) *ContactService {
	service := NewContactService(store, nil)
	var seq int
	service.now = func() time.Time {
		seq++
		return fixedNow.Add(time.Duration(seq) * time.Minute)
	}
	service.newID = func() string { return fmt.Sprintf("contact-%d", seq) }
	return service
}

func validContact() SubmitContactInput {
	return SubmitContactInput{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Subject: "Billing question",
		Message: "Was I charged twice?",
	}
}

func TestSubmitDefaults(t *testing.T) {
	service := newTestContactService(repositories.NewMemoryContactRepository())

	contact, err := service.Submit(context.Background(), validContact())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if contact.Status != models.ContactNew {
		t.Errorf("Status = %q, want new", contact.Status)
	}
	if contact.Priority != models.PriorityMedium {
		t.Errorf("Priority = %q, want medium", contact.Priority)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*SubmitContactInput)
	}{
		{"missing name", func(in *SubmitContactInput) { in.Name = " " }},
		{"missing email", func(in *SubmitContactInput) { in.Email = "" }},
		{"bad email", func(in *SubmitContactInput) { in.Email = "not-an-email" }},
		{"missing subject", func(in *SubmitContactInput) { in.Subject = "" }},
		{"missing message", func(in *SubmitContactInput) { in.Message = "" }},
		{"bad priority", func(in *SubmitContactInput) { in.Priority = "urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repositories.NewMemoryContactRepository()
			service := newTestContactService(store)

			input := validContact()
			tt.apply(&input)

			_, err := service.Submit(context.Background(), input)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Submit() error = %v, want ValidationError", err)
			}
			if all, _ := store.GetAll(context.Background()); len(all) != 0 {
				t.Errorf("store written despite validation failure")
			}
		})
	}
}

func TestContactUpdateStatus(t *testing.T) {
	service := newTestContactService(repositories.NewMemoryContactRepository())
	ctx := context.Background()

	input := validContact()
	input.Priority = "low"
	contact, _ := service.Submit(ctx, input)

	replied := "replied"
	updated, err := service.UpdateStatus(ctx, contact.ID, UpdateContactInput{Status: &replied})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != models.ContactReplied || updated.Priority != models.PriorityLow {
		t.Errorf("UpdateStatus() = %+v", updated)
	}

	bogus := "archived"
	var validationErr *ValidationError
	if _, err := service.UpdateStatus(ctx, contact.ID, UpdateContactInput{Status: &bogus}); !errors.As(err, &validationErr) {
		t.Errorf("UpdateStatus(archived) error = %v, want ValidationError", err)
	}
	if _, err := service.UpdateStatus(ctx, contact.ID, UpdateContactInput{}); !errors.As(err, &validationErr) {
		t.Errorf("empty UpdateStatus() error = %v, want ValidationError", err)
	}

	var notFound *NotFoundError
	if _, err := service.UpdateStatus(ctx, "missing", UpdateContactInput{Status: &replied}); !errors.As(err, &notFound) {
		t.Errorf("UpdateStatus(missing) error = %v, want NotFoundError", err)
	}
}

func TestContactListNewestFirstAndDelete(t *testing.T) {
	service := newTestContactService(repositories.NewMemoryContactRepository())
	ctx := context.Background()

	first, _ := service.Submit(ctx, validContact())
	second, _ := service.Submit(ctx, validContact())

	contacts, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(contacts) != 2 || contacts[0].ID != second.ID || contacts[1].ID != first.ID {
		t.Errorf("List() order = %v", contacts)
	}

	deleted, err := service.Delete(ctx, first.ID)
	if err != nil || deleted.ID != first.ID {
		t.Errorf("Delete() = %v, %v", deleted, err)
	}

	count, err := service.DeleteAll(ctx)
	if err != nil || count != 1 {
		t.Errorf("DeleteAll() = %d, %v, want 1", count, err)
	}
}
