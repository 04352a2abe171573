// internal/store/roster_test.go
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/models"
)

func rosterEntry(applicantID, postID string) models.RosterEntry {
	return models.RosterEntry{
		Applicant:  models.Applicant{ID: applicantID, Name: "Test", Status: models.StatusSelected},
		PostID:     postID,
		SelectedAt: time.Now().UTC(),
	}
}

func TestRosterLedger_SelectedLifecycle(t *testing.T) {
	l := NewRosterLedger()
	l.AppendSelected("it_software", rosterEntry("a1", "p1"))
	l.AppendSelected("it_software", rosterEntry("a2", "p1"))

	assert.True(t, l.IsSelected("it_software", "a1"))
	assert.False(t, l.IsSelected("healthcare", "a1"), "department scoped")

	assert.True(t, l.RemoveSelected("it_software", "a1"))
	assert.False(t, l.RemoveSelected("it_software", "a1"), "second removal is a no-op")
	assert.False(t, l.IsSelected("it_software", "a1"))

	selected := l.Selected("it_software")
	require.Len(t, selected, 1)
	assert.Equal(t, "a2", selected[0].ID)
}

func TestRosterLedger_RejectedLifecycle(t *testing.T) {
	l := NewRosterLedger()
	l.AppendRejected("it_software", models.Applicant{ID: "a1", Status: models.StatusRejected})

	require.Len(t, l.Rejected("it_software"), 1)

	l.RemoveRejected("it_software", "a1")
	assert.Empty(t, l.Rejected("it_software"))

	l.RemoveRejected("it_software", "ghost")
}

func TestRosterLedger_Counts(t *testing.T) {
	l := NewRosterLedger()
	l.AppendSelected("it_software", rosterEntry("a1", "p1"))
	l.AppendRejected("it_software", models.Applicant{ID: "a2"})
	l.AppendRejected("it_software", models.Applicant{ID: "a3"})

	sel, rej := l.Counts("it_software")
	assert.Equal(t, 1, sel)
	assert.Equal(t, 2, rej)

	sel, rej = l.Counts("empty_dept")
	assert.Zero(t, sel)
	assert.Zero(t, rej)
}

func TestRosterLedger_ReturnsCopies(t *testing.T) {
	l := NewRosterLedger()
	l.AppendSelected("it_software", rosterEntry("a1", "p1"))

	out := l.Selected("it_software")
	out[0].PostID = "mutated"

	assert.Equal(t, "p1", l.Selected("it_software")[0].PostID)
}
