package admin

import (
	"testing"
	"time"

	"MediMaga/models"
)

func contactIDs(contacts []models.Contact) []string {
	ids := make([]string, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}
	return ids
}

func appointmentIDs(appointments []models.Appointment) []string {
	ids := make([]string, 0, len(appointments))
	for _, a := range appointments {
		ids = append(ids, a.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFilterAndSortStatusFilter(t *testing.T) {
	contacts := []models.Contact{
		{ID: "ann", Name: "Ann", Status: models.ContactNew},
		{ID: "bob", Name: "Bob", Status: models.ContactClosed},
	}
	got := FilterAndSort(contacts, Query{StatusFilter: "new", PriorityFilter: FilterAll, SortBy: SortNewest})
	if ids := contactIDs(got); !equalIDs(ids, []string{"ann"}) {
		t.Fatalf("got %v, want [ann]", ids)
	}
}

func TestFilterAndSortDefaultsMissingStatus(t *testing.T) {
	contacts := []models.Contact{{ID: "a", Name: "A"}, {ID: "b", Name: "B", Status: models.ContactReplied}}
	got := FilterAndSort(contacts, Query{StatusFilter: "new"})
	if ids := contactIDs(got); !equalIDs(ids, []string{"a"}) {
		t.Fatalf("got %v, want [a]", ids)
	}

	appointments := []models.Appointment{{ID: "x"}, {ID: "y", Status: models.StatusCancelled}}
	gotAppts := FilterAndSort(appointments, Query{StatusFilter: "scheduled"})
	if ids := appointmentIDs(gotAppts); !equalIDs(ids, []string{"x"}) {
		t.Fatalf("got %v, want [x]", ids)
	}
}

func TestFilterAndSortSearch(t *testing.T) {
	contacts := []models.Contact{
		{ID: "1", Name: "Ann Lee", Email: "ann@x.com", Subject: "Billing"},
		{ID: "2", Name: "Bob", Email: "bob@example.com", Subject: "Question"},
		{ID: "3", Name: "Cara", Email: "cara@x.com", Subject: "billing again"},
	}
	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3"}},
		{"BILLING", []string{"1", "3"}},
		{"example", []string{"2"}},
		{"lee", []string{"1"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		got := FilterAndSort(contacts, Query{SearchTerm: tt.term, StatusFilter: FilterAll})
		if ids := contactIDs(got); !equalIDs(ids, tt.want) {
			t.Errorf("search %q: got %v, want %v", tt.term, ids, tt.want)
		}
	}

	appointments := []models.Appointment{
		{ID: "a", PatientName: "Jane", DoctorName: "Dr. A", DoctorSpecialty: "Cardiologist"},
		{ID: "b", PatientName: "John", DoctorName: "Dr. B", DoctorSpecialty: "Dermatologist"},
	}
	got := FilterAndSort(appointments, Query{SearchTerm: "cardio"})
	if ids := appointmentIDs(got); !equalIDs(ids, []string{"a"}) {
		t.Fatalf("got %v, want [a]", ids)
	}
}

func TestFilterAndSortPriorityIsStable(t *testing.T) {
	contacts := []models.Contact{
		{ID: "m", Priority: models.PriorityMedium},
		{ID: "h1", Priority: models.PriorityHigh},
		{ID: "h2", Priority: models.PriorityHigh},
	}
	got := FilterAndSort(contacts, Query{SortBy: SortPriority})
	if ids := contactIDs(got); !equalIDs(ids, []string{"h1", "h2", "m"}) {
		t.Fatalf("got %v, want [h1 h2 m]", ids)
	}
}

func TestFilterAndSortPriorityMissingRanksMedium(t *testing.T) {
	contacts := []models.Contact{
		{ID: "low", Priority: models.PriorityLow},
		{ID: "unset"},
		{ID: "high", Priority: models.PriorityHigh},
	}
	got := FilterAndSort(contacts, Query{SortBy: SortPriority})
	if ids := contactIDs(got); !equalIDs(ids, []string{"high", "unset", "low"}) {
		t.Fatalf("got %v", ids)
	}

	got = FilterAndSort(contacts, Query{PriorityFilter: "medium"})
	if ids := contactIDs(got); !equalIDs(ids, []string{"unset"}) {
		t.Fatalf("priority filter: got %v, want [unset]", ids)
	}
}

func TestFilterAndSortPriorityFilterSkipsAppointments(t *testing.T) {
	appointments := []models.Appointment{{ID: "a"}, {ID: "b"}}
	got := FilterAndSort(appointments, Query{PriorityFilter: "high", SortBy: SortPriority})
	if ids := appointmentIDs(got); !equalIDs(ids, []string{"a", "b"}) {
		t.Fatalf("got %v, want [a b]", ids)
	}
}

func TestFilterAndSortByDate(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	contacts := []models.Contact{
		{ID: "mid", CreatedAt: base.Add(24 * time.Hour)},
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(48 * time.Hour)},
	}
	if ids := contactIDs(FilterAndSort(contacts, Query{SortBy: SortNewest})); !equalIDs(ids, []string{"new", "mid", "old"}) {
		t.Errorf("newest: got %v", ids)
	}
	if ids := contactIDs(FilterAndSort(contacts, Query{SortBy: SortOldest})); !equalIDs(ids, []string{"old", "mid", "new"}) {
		t.Errorf("oldest: got %v", ids)
	}

	appointments := []models.Appointment{
		{ID: "feb", AppointmentDate: "2024-02-01"},
		{ID: "bad", AppointmentDate: "next tuesday"},
		{ID: "jan", AppointmentDate: "2024-01-15"},
	}
	if ids := appointmentIDs(FilterAndSort(appointments, Query{SortBy: SortNewest})); !equalIDs(ids, []string{"feb", "jan", "bad"}) {
		t.Errorf("appointments newest: got %v", ids)
	}
	if ids := appointmentIDs(FilterAndSort(appointments, Query{SortBy: SortOldest})); !equalIDs(ids, []string{"bad", "jan", "feb"}) {
		t.Errorf("appointments oldest: got %v", ids)
	}
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	contacts := []models.Contact{
		{ID: "m", Priority: models.PriorityMedium},
		{ID: "h", Priority: models.PriorityHigh},
	}
	first := FilterAndSort(contacts, Query{SortBy: SortPriority})
	second := FilterAndSort(contacts, Query{SortBy: SortPriority})
	if contacts[0].ID != "m" || contacts[1].ID != "h" {
		t.Fatalf("input reordered: %v", contactIDs(contacts))
	}
	if !equalIDs(contactIDs(first), contactIDs(second)) {
		t.Fatalf("results differ between runs: %v vs %v", contactIDs(first), contactIDs(second))
	}
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("  ann ", "", "", "")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	want := Query{SearchTerm: "ann", StatusFilter: FilterAll, PriorityFilter: FilterAll, SortBy: SortNewest}
	if q != want {
		t.Fatalf("got %+v, want %+v", q, want)
	}

	if _, err := ParseQuery("", "", "", "alphabetical"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
	if _, err := ParseQuery("", "", "urgent", ""); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}
