package repositories

import (
	"context"
	"testing"
	"time"

	"MediMaga/models"
)

func storedContact(id string, createdAt time.Time) *models.Contact {
	return &models.Contact{
		ID:        id,
		Name:      "Visitor " + id,
		Email:     id + "@example.com",
		Subject:   "Question",
		Message:   "Do you open on Sundays?",
		Status:    models.ContactNew,
		Priority:  models.PriorityMedium,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestContactListCacheFollowsEveryWrite(t *testing.T) {
	ctx := context.Background()
	c, m := newTestCache(t)
	repo := NewContactRepository(newTestDB(t), c)
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	list := func() []models.Contact {
		t.Helper()
		contacts, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("GetAll() error = %v", err)
		}
		return contacts
	}

	if err := repo.Create(ctx, storedContact("a", base)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, storedContact("b", base.Add(time.Hour))); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := list(); len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("GetAll() = %+v, want b then a", got)
	}

	replied := models.ContactReplied
	if _, err := repo.Update(ctx, "a", models.ContactChanges{Status: &replied, UpdatedAt: base.Add(2 * time.Hour)}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got := list(); got[1].Status != models.ContactReplied {
		t.Fatalf("after update status = %q, want replied", got[1].Status)
	}

	m.SetError(redisFailure)
	if _, err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	m.SetError("")
	if got := list(); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("after delete = %+v, want only a", got)
	}

	for _, key := range m.Keys() {
		if key == contactsCacheKey+":generation" {
			continue
		}
		if ttl := m.TTL(key); ttl <= 0 || ttl > ContactCacheExpiry {
			t.Errorf("TTL(%s) = %v, want (0, %v]", key, ttl, ContactCacheExpiry)
		}
	}

	if _, err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if got := list(); len(got) != 0 {
		t.Errorf("after delete all = %+v, want empty", got)
	}
}
