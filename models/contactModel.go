package models

import "time"

type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactReplied ContactStatus = "replied"
	ContactClosed  ContactStatus = "closed"
)

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactNew, ContactReplied, ContactClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Contact model for contact-form submissions.
type Contact struct {
	ID         string        `gorm:"primaryKey;column:id" json:"id" bson:"id"`
	Name       string        `gorm:"column:name;not null" json:"name" bson:"name"`
	Email      string        `gorm:"column:email;not null;index" json:"email" bson:"email"`
	Phone      string        `gorm:"column:phone" json:"phone,omitempty" bson:"phone,omitempty"`
	Department string        `gorm:"column:department" json:"department,omitempty" bson:"department,omitempty"`
	Subject    string        `gorm:"column:subject;not null" json:"subject" bson:"subject"`
	Message    string        `gorm:"column:message;type:text;not null" json:"message" bson:"message"`
	Status     ContactStatus `gorm:"column:status;check:status IN ('new', 'replied', 'closed');not null;index" json:"status" bson:"status"`
	Priority   Priority      `gorm:"column:priority;check:priority IN ('low', 'medium', 'high');not null" json:"priority" bson:"priority"`
	CreatedAt  time.Time     `gorm:"column:created_at;index" json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time     `gorm:"column:updated_at" json:"updatedAt" bson:"updatedAt"`
}

func (Contact) TableName() string {
	return "contact"
}

func (c Contact) SearchFields() []string {
	return []string{c.Name, c.Email, c.Subject}
}

func (c Contact) StatusOrDefault() string {
	if c.Status == "" {
		return string(ContactNew)
	}
	return string(c.Status)
}

func (c Contact) PriorityOrDefault() (string, bool) {
	if c.Priority == "" {
		return string(PriorityMedium), true
	}
	return string(c.Priority), true
}

func (c Contact) SortDate() (time.Time, bool) {
	return c.CreatedAt, !c.CreatedAt.IsZero()
}

// ContactChanges is the set of fields a staff update may write.
type ContactChanges struct {
	Status    *ContactStatus
	Priority  *Priority
	UpdatedAt time.Time
}
