package repositories

import (
	"context"
	"slices"
	"sync"
	"time"

	"MediMaga/models"
)

// memoryTable keeps records in insertion order behind a single lock. Every method
// hands out copies so callers never alias stored records.
type memoryTable[T any] struct {
	mu        sync.RWMutex
	ids       []string
	rows      map[string]T
	createdAt func(T) time.Time
}

func newMemoryTable[T any](createdAt func(T) time.Time) *memoryTable[T] {
	return &memoryTable[T]{rows: make(map[string]T), createdAt: createdAt}
}

func (t *memoryTable[T]) insert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = row
}

// list returns matching rows newest first; rows created at the same instant keep
// newest-inserted first.
func (t *memoryTable[T]) list(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.ids))
	for i := len(t.ids) - 1; i >= 0; i-- {
		row := t.rows[t.ids[i]]
		if match == nil || match(row) {
			out = append(out, row)
		}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return t.createdAt(b).Compare(t.createdAt(a))
	})
	return out
}

func (t *memoryTable[T]) update(id string, apply func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	apply(&row)
	t.rows[id] = row
	return row, true
}

func (t *memoryTable[T]) remove(id string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	delete(t.rows, id)
	t.ids = slices.DeleteFunc(t.ids, func(existing string) bool { return existing == id })
	return row, true
}

func (t *memoryTable[T]) clear() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := int64(len(t.rows))
	t.ids = nil
	t.rows = make(map[string]T)
	return count
}

// MemoryAppointmentRepository is the STORE_DRIVER=memory appointment store. Data does
// not survive a restart.
type MemoryAppointmentRepository struct {
	table *memoryTable[models.Appointment]
}

func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{
		table: newMemoryTable(func(a models.Appointment) time.Time { return a.CreatedAt }),
	}
}

func (r *MemoryAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.table.insert(appointment.ID, *appointment)
	return nil
}

func (r *MemoryAppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.list(nil), nil
}

func (r *MemoryAppointmentRepository) GetByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.list(func(a models.Appointment) bool { return a.PatientEmail == email }), nil
}

func (r *MemoryAppointmentRepository) Update(ctx context.Context, id string, changes models.AppointmentChanges) (*models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	updated, ok := r.table.update(id, func(a *models.Appointment) {
		if changes.Status != nil {
			a.Status = *changes.Status
		}
		if changes.Notes != nil {
			a.Notes = *changes.Notes
		}
		a.UpdatedAt = changes.UpdatedAt
	})
	if !ok {
		return nil, models.ErrNotFound
	}
	return &updated, nil
}

func (r *MemoryAppointmentRepository) Delete(ctx context.Context, id string) (*models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deleted, ok := r.table.remove(id)
	if !ok {
		return nil, models.ErrNotFound
	}
	return &deleted, nil
}

func (r *MemoryAppointmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.table.clear(), nil
}

// MemoryContactRepository is the STORE_DRIVER=memory contact store.
type MemoryContactRepository struct {
	table *memoryTable[models.Contact]
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{
		table: newMemoryTable(func(c models.Contact) time.Time { return c.CreatedAt }),
	}
}

func (r *MemoryContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.table.insert(contact.ID, *contact)
	return nil
}

func (r *MemoryContactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.list(nil), nil
}

func (r *MemoryContactRepository) Update(ctx context.Context, id string, changes models.ContactChanges) (*models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	updated, ok := r.table.update(id, func(c *models.Contact) {
		if changes.Status != nil {
			c.Status = *changes.Status
		}
		if changes.Priority != nil {
			c.Priority = *changes.Priority
		}
		c.UpdatedAt = changes.UpdatedAt
	})
	if !ok {
		return nil, models.ErrNotFound
	}
	return &updated, nil
}

func (r *MemoryContactRepository) Delete(ctx context.Context, id string) (*models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deleted, ok := r.table.remove(id)
	if !ok {
		return nil, models.ErrNotFound
	}
	return &deleted, nil
}

func (r *MemoryContactRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.table.clear(), nil
}
