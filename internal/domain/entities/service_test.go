package entities

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validService() ServiceRequest {
	return ServiceRequest{
		ID:            "serv-1",
		Title:         "Garden cleanup",
		Description:   "Full cleanup of a 200m2 garden",
		Category:      CategoryGardening,
		Address:       "Rua das Flores 100",
		City:          "Curitiba",
		PreferredDate: "2026-09-15",
		RequesterID:   "user-1",
		State:         ServiceStatePublished,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestServiceRequestAssign(t *testing.T) {
	t.Run("moves state and selection together", func(t *testing.T) {
		s := validService()
		require.NoError(t, s.Assign("quot-1"))
		assert.Equal(t, ServiceStateAssigned, s.State)
		require.NotNil(t, s.SelectedQuoteID)
		assert.Equal(t, "quot-1", *s.SelectedQuoteID)
		assert.True(t, s.Assigned())
	})

	t.Run("second assignment is rejected and keeps the first winner", func(t *testing.T) {
		s := validService()
		require.NoError(t, s.Assign("quot-1"))

		err := s.Assign("quot-2")
		assert.ErrorIs(t, err, ErrAlreadyAssigned)
		assert.Equal(t, ServiceStateAssigned, s.State)
		assert.Equal(t, "quot-1", *s.SelectedQuoteID)
	})
}

func TestServiceRequestValidate(t *testing.T) {
	t.Run("valid request has no problems", func(t *testing.T) {
		assert.Empty(t, validService().Validate())
	})

	cases := []struct {
		name    string
		mutate  func(*ServiceRequest)
		problem string
	}{
		{"short title", func(s *ServiceRequest) { s.Title = "ab" }, "title"},
		{"short description", func(s *ServiceRequest) { s.Description = "too short" }, "description"},
		{"unknown category", func(s *ServiceRequest) { s.Category = "KNITTING" }, "category"},
		{"short address", func(s *ServiceRequest) { s.Address = "Rua" }, "address"},
		{"missing city", func(s *ServiceRequest) { s.City = " " }, "city"},
		{"missing date", func(s *ServiceRequest) { s.PreferredDate = "" }, "preferred date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validService()
			tc.mutate(&s)
			problems := s.Validate()
			require.Len(t, problems, 1)
			assert.True(t, strings.Contains(problems[0], tc.problem), "problem %q should mention %q", problems[0], tc.problem)
		})
	}
}

func TestFilterServices(t *testing.T) {
	services := []ServiceRequest{
		{ID: "s1", RequesterID: "u1", Category: CategoryGardening, State: ServiceStatePublished},
		{ID: "s2", RequesterID: "u2", Category: CategoryPainting, State: ServiceStatePublished},
		{ID: "s3", RequesterID: "u1", Category: CategoryPainting, State: ServiceStateAssigned},
	}

	t.Run("zero filter matches everything", func(t *testing.T) {
		assert.Len(t, FilterServices(services, ServiceFilter{}), 3)
	})

	t.Run("by requester", func(t *testing.T) {
		out := FilterServices(services, ServiceFilter{RequesterID: "u1"})
		require.Len(t, out, 2)
		assert.Equal(t, "s1", out[0].ID)
		assert.Equal(t, "s3", out[1].ID)
	})

	t.Run("criteria combine", func(t *testing.T) {
		out := FilterServices(services, ServiceFilter{RequesterID: "u1", Category: CategoryPainting})
		require.Len(t, out, 1)
		assert.Equal(t, "s3", out[0].ID)
	})

	t.Run("by state", func(t *testing.T) {
		out := FilterServices(services, ServiceFilter{State: ServiceStateAssigned})
		require.Len(t, out, 1)
		assert.Equal(t, "s3", out[0].ID)
	})
}
