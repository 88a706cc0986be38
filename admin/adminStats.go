package admin

import (
	"time"

	"MediMaga/models"
)

// Stats summarises both collections for the staff dashboard.
type Stats struct {
	TotalContacts         int `json:"totalContacts"`
	NewContacts           int `json:"newContacts"`
	HighPriorityContacts  int `json:"highPriorityContacts"`
	RepliedContacts       int `json:"repliedContacts"`
	TotalAppointments     int `json:"totalAppointments"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
}

// ComputeStats counts over the given snapshots. An appointment is upcoming when its date
// parses and falls strictly after now; dates that do not parse are skipped.
func ComputeStats(contacts []models.Contact, appointments []models.Appointment, now time.Time) Stats {
	stats := Stats{
		TotalContacts:     len(contacts),
		TotalAppointments: len(appointments),
	}

	for _, c := range contacts {
		switch c.StatusOrDefault() {
		case string(models.ContactNew):
			stats.NewContacts++
		case string(models.ContactReplied):
			stats.RepliedContacts++
		}
		if p, _ := c.PriorityOrDefault(); p == string(models.PriorityHigh) {
			stats.HighPriorityContacts++
		}
	}

	for _, a := range appointments {
		if a.StatusOrDefault() == string(models.StatusCompleted) {
			stats.CompletedAppointments++
		}
		if date, ok := a.SortDate(); ok && date.After(now) {
			stats.UpcomingAppointments++
		}
	}
	return stats
}
