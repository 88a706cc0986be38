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
	AppointmentCacheExpiry = 5 * time.Minute
	// PatientCacheExpiry is short because the patient lookup is public and every
	// distinct email gets its own key.
	PatientCacheExpiry = time.Minute

	appointmentsCacheKey = "appointments_cache"
	queryTimeout         = 5 * time.Second
)

type AppointmentRepository struct {
	db    *gorm.DB
	lists *listCache
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{db: db, lists: newListCache(cache, appointmentsCacheKey)}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	r.lists.bump(ctx)
	return nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.cachedList(ctx, "all", AppointmentCacheExpiry, func(db *gorm.DB) *gorm.DB { return db })
}

func (r *AppointmentRepository) GetByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.cachedList(ctx, "patient:"+email, PatientCacheExpiry, func(db *gorm.DB) *gorm.DB {
		return db.Where("patient_email = ?", email)
	})
}

// Update writes only status, notes and updated_at, in a single UPDATE ... RETURNING.
func (r *AppointmentRepository) Update(ctx context.Context, id string, changes models.AppointmentChanges) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	updates := map[string]interface{}{"updated_at": changes.UpdatedAt}
	if changes.Status != nil {
		updates["status"] = *changes.Status
	}
	if changes.Notes != nil {
		updates["notes"] = *changes.Notes
	}

	var updated []models.Appointment
	result := r.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, models.ErrNotFound
	}

	r.lists.bump(ctx)
	return &updated[0], nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var deleted []models.Appointment
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, models.ErrNotFound
	}

	r.lists.bump(ctx)
	return &deleted[0], nil
}

func (r *AppointmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Appointment{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete all appointments: %w", result.Error)
	}

	r.lists.bump(ctx)
	return result.RowsAffected, nil
}

func (r *AppointmentRepository) cachedList(ctx context.Context, name string, ttl time.Duration, scope func(*gorm.DB) *gorm.DB) ([]models.Appointment, error) {
	return cachedRead(ctx, r.lists, name, ttl, func() ([]models.Appointment, error) {
		var appointments []models.Appointment
		err := r.db.WithContext(ctx).
			Scopes(scope).
			Order("created_at DESC").
			Find(&appointments).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get appointments: %w", err)
		}
		return appointments, nil
	})
}
