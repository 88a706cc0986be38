package repositories

import (
	"context"
	"fmt"
	"time"

	"MediMaga/cache"
	"MediMaga/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ContactCacheExpiry = 5 * time.Minute

	contactsCacheKey = "contacts_cache"
)

type ContactRepository struct {
	db    *gorm.DB
	lists *listCache
}

func NewContactRepository(db *gorm.DB, cache *cache.Cache) *ContactRepository {
	return &ContactRepository{db: db, lists: newListCache(cache, contactsCacheKey)}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	r.lists.bump(ctx)
	return nil
}

func (r *ContactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return cachedRead(ctx, r.lists, "all", ContactCacheExpiry, func() ([]models.Contact, error) {
		var contacts []models.Contact
		if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
			return nil, fmt.Errorf("failed to get all contacts: %w", err)
		}
		return contacts, nil
	})
}

func (r *ContactRepository) Update(ctx context.Context, id string, changes models.ContactChanges) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	updates := map[string]interface{}{"updated_at": changes.UpdatedAt}
	if changes.Status != nil {
		updates["status"] = *changes.Status
	}
	if changes.Priority != nil {
		updates["priority"] = *changes.Priority
	}

	var updated []models.Contact
	result := r.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update contact: %w", result.Error)
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, models.ErrNotFound
	}

	r.lists.bump(ctx)
	return &updated[0], nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var deleted []models.Contact
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, models.ErrNotFound
	}

	r.lists.bump(ctx)
	return &deleted[0], nil
}

func (r *ContactRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Contact{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete all contacts: %w", result.Error)
	}

	r.lists.bump(ctx)
	return result.RowsAffected, nil
}
