// internal/export/csv_test.go
package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/models"
)

func TestWriteSelectedCSV(t *testing.T) {
	entries := []models.RosterEntry{
		{
			Applicant:  models.Applicant{ID: "p1-1", Name: "Aarav Sharma", Email: "aarav@example.com"},
			PostID:     "p1",
			SelectedAt: time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			Applicant:  models.Applicant{ID: "p2-4", Name: "Diya, Patel", Email: "diya@example.com"},
			PostID:     "p2",
			SelectedAt: time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSelectedCSV(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "name", "email", "post_id", "selected_at"}, records[0])
	assert.Equal(t, []string{"p1-1", "Aarav Sharma", "aarav@example.com", "p1", "2026-09-01T12:30:00Z"}, records[1])

	// embedded comma survives the round trip
	assert.Equal(t, "Diya, Patel", records[2][1])
}

func TestWriteSelectedCSV_EmptyRoster(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSelectedCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
