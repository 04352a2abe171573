// internal/models/validate_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/common/errors"
)

func validApplicant() *Applicant {
	return &Applicant{
		ID:              "p1-1",
		Name:            "Aarav Sharma",
		Email:           "aarav.sharma1@example.com",
		Skills:          []string{"react"},
		Qualifications:  "B.Tech",
		Location:        "Bengaluru",
		SectorInterests: []string{"IT & Software"},
		SocialCategory:  "SC",
		Status:          StatusApplied,
	}
}

func TestValidateApplicant(t *testing.T) {
	require.NoError(t, ValidateApplicant(validApplicant()))

	t.Run("bad email", func(t *testing.T) {
		a := validApplicant()
		a.Email = "not-an-email"
		err := ValidateApplicant(a)
		assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
	})

	t.Run("unknown social category", func(t *testing.T) {
		a := validApplicant()
		a.SocialCategory = "Other"
		err := ValidateApplicant(a)
		assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
	})

	t.Run("missing name", func(t *testing.T) {
		a := validApplicant()
		a.Name = ""
		err := ValidateApplicant(a)
		assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
	})

	t.Run("nil slices marshal to null and pass", func(t *testing.T) {
		a := validApplicant()
		a.Skills = nil
		a.SectorInterests = nil
		assert.NoError(t, ValidateApplicant(a))
	})
}

func TestValidatePosting(t *testing.T) {
	// No required skills: the field marshals to null and must still validate.
	p := &Posting{ID: "p1", DepartmentID: "it_software", Title: "React Internship", Positions: 3}
	require.NoError(t, ValidatePosting(p))

	t.Run("zero positions", func(t *testing.T) {
		bad := &Posting{ID: "p1", Title: "React Internship"}
		err := ValidatePosting(bad)
		assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
	})

	t.Run("filled beyond capacity", func(t *testing.T) {
		bad := &Posting{ID: "p1", Title: "React Internship", Positions: 2, PositionsFilled: 3}
		err := ValidatePosting(bad)
		assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
	})
}

func TestApplicantClone(t *testing.T) {
	a := validApplicant()
	score := 87.5
	a.Score = &score

	cp := a.Clone()
	cp.Skills[0] = "mutated"
	*cp.Score = 1

	assert.Equal(t, "react", a.Skills[0])
	assert.Equal(t, 87.5, *a.Score)
}
