package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

func TestNewIncident(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("Valid incident creation", func(t *testing.T) {
		incident, err := model.NewIncident("IR4711", "database outage", created, "Active")
		gt.NoError(t, err)
		gt.Equal(t, types.IncidentID("IR4711"), incident.ID)
		gt.Equal(t, "database outage", incident.Title)
		gt.Equal(t, created, incident.CreatedAt)
		gt.Equal(t, "Active", incident.Status)
		gt.Equal(t, "", incident.Classification) // Optional, not set
		gt.Equal(t, "", incident.TierQueue)      // Optional, not set
	})

	t.Run("Empty ID", func(t *testing.T) {
		incident, err := model.NewIncident("", "test", created, "Active")
		gt.Error(t, err)
		gt.V(t, incident).Nil()
		gt.S(t, err.Error()).Contains("ID is required")
	})

	t.Run("Empty title is allowed", func(t *testing.T) {
		incident, err := model.NewIncident("IR1", "", created, "Active")
		gt.NoError(t, err)
		gt.Equal(t, "", incident.Title)
	})

	t.Run("Zero creation time", func(t *testing.T) {
		incident, err := model.NewIncident("IR1", "test", time.Time{}, "Active")
		gt.Error(t, err)
		gt.V(t, incident).Nil()
		gt.S(t, err.Error()).Contains("creation time is required")
	})

	t.Run("Empty status is allowed", func(t *testing.T) {
		incident, err := model.NewIncident("IR1", "test", created, "")
		gt.NoError(t, err)
		gt.Equal(t, "", incident.Status)
	})
}

func TestIncidentClone(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	original := &model.Incident{
		ID:             "IR1",
		Title:          "printer on fire",
		CreatedAt:      created,
		Status:         "Active",
		Classification: "Hardware",
		TierQueue:      "Tier 1",
	}

	clone := original.Clone()
	gt.Equal(t, *original, *clone)

	clone.Title = "changed"
	gt.Equal(t, "printer on fire", original.Title)

	var nilIncident *model.Incident
	gt.V(t, nilIncident.Clone()).Nil()
}
