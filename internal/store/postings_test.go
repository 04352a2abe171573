// internal/store/postings_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/models"
)

func newPosting(id, dept string) *models.Posting {
	return &models.Posting{
		ID:           id,
		DepartmentID: dept,
		Title:        "Data Internship",
		Positions:    2,
	}
}

func TestPostingRegistry_AddAndFind(t *testing.T) {
	r := NewPostingRegistry()
	require.NoError(t, r.Add(newPosting("p1", "it_software")))

	p, ok := r.Find("p1")
	require.True(t, ok)
	assert.Equal(t, "Data Internship", p.Title)

	_, ok = r.Find("p2")
	assert.False(t, ok)

	dept, ok := r.Department("p1")
	require.True(t, ok)
	assert.Equal(t, "it_software", dept)
}

func TestPostingRegistry_FindCopyAndMutate(t *testing.T) {
	r := NewPostingRegistry()
	require.NoError(t, r.Add(newPosting("p1", "it_software")))

	cp, ok := r.FindCopy("p1")
	require.True(t, ok)
	cp.PositionsFilled = 99
	again, _ := r.FindCopy("p1")
	assert.Equal(t, 0, again.PositionsFilled)

	live, _ := r.Find("p1")
	r.Mutate(func() { live.PositionsFilled++ })
	updated, _ := r.FindCopy("p1")
	assert.Equal(t, 1, updated.PositionsFilled)

	_, ok = r.FindCopy("ghost")
	assert.False(t, ok)
}

func TestPostingRegistry_AddRejectsInvalidRecord(t *testing.T) {
	r := NewPostingRegistry()

	err := r.Add(&models.Posting{ID: "p1", DepartmentID: "it_software"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))

	overfilled := newPosting("p2", "it_software")
	overfilled.PositionsFilled = 3
	err = r.Add(overfilled)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
}

func TestPostingRegistry_ActiveByDepartment(t *testing.T) {
	r := NewPostingRegistry()
	require.NoError(t, r.Add(newPosting("p1", "it_software")))
	require.NoError(t, r.Add(newPosting("p2", "it_software")))
	require.NoError(t, r.Add(newPosting("p3", "healthcare")))

	active, err := r.ActiveByDepartment("it_software")
	require.NoError(t, err)
	assert.Len(t, active, 2)

	// copies, not live records
	active[0].Title = "mutated"
	p, _ := r.Find(active[0].ID)
	assert.Equal(t, "Data Internship", p.Title)

	_, err = r.ActiveByDepartment("unknown_dept")
	assert.True(t, errors.IsCode(err, errors.ErrCodePostingNotFound))
}

func TestPostingRegistry_EnsureDepartment(t *testing.T) {
	r := NewPostingRegistry()
	r.EnsureDepartment("logistics")

	active, err := r.ActiveByDepartment("logistics")
	require.NoError(t, err)
	assert.Empty(t, active)
	assert.Contains(t, r.Departments(), "logistics")
}

func TestPostingRegistry_MoveToPastAndRestore(t *testing.T) {
	r := NewPostingRegistry()
	require.NoError(t, r.Add(newPosting("p1", "it_software")))

	moved, ok := r.MoveToPast("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", moved.ID)

	active, err := r.ActiveByDepartment("it_software")
	require.NoError(t, err)
	assert.Empty(t, active)
	assert.Len(t, r.PastByDepartment("it_software"), 1)

	// still findable while past
	_, ok = r.Find("p1")
	assert.True(t, ok)

	_, ok = r.MoveToPast("p1")
	assert.False(t, ok, "already past")

	restored, err := r.Restore("it_software", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", restored.ID)
	assert.Empty(t, r.PastByDepartment("it_software"))

	_, err = r.Restore("it_software", "p1")
	assert.True(t, errors.IsCode(err, errors.ErrCodePostingNotFound))
}
