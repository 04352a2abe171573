// internal/export/csv.go

// Package export renders department rosters for download.
package export

import (
	"encoding/csv"
	"io"
	"time"

	"internship-allocator/internal/models"
)

var header = []string{"id", "name", "email", "post_id", "selected_at"}

// WriteSelectedCSV streams a department's selected roster as CSV.
func WriteSelectedCSV(w io.Writer, entries []models.RosterEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.Name,
			e.Email,
			e.PostID,
			e.SelectedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
