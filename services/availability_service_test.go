package services

import (
	"errors"
	"testing"

	"agendapro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDeleteCascadeOrder(t *testing.T) {
	var calls []string
	failing := func(name string) deleteStrategy {
		return deleteStrategy{name: name, run: func() error {
			calls = append(calls, name)
			return errors.New(name + " rejected")
		}}
	}
	succeeding := func(name string) deleteStrategy {
		return deleteStrategy{name: name, run: func() error {
			calls = append(calls, name)
			return nil
		}}
	}

	t.Run("first tier succeeds", func(t *testing.T) {
		calls = nil
		name, err := runDeleteCascade([]deleteStrategy{
			succeeding("delete"),
			failing("force-delete"),
			failing("deactivate"),
		})
		require.NoError(t, err)
		assert.Equal(t, "delete", name)
		assert.Equal(t, []string{"delete"}, calls)
	})

	t.Run("falls through in order", func(t *testing.T) {
		calls = nil
		name, err := runDeleteCascade([]deleteStrategy{
			failing("delete"),
			failing("force-delete"),
			succeeding("deactivate"),
		})
		require.NoError(t, err)
		assert.Equal(t, "deactivate", name)
		assert.Equal(t, []string{"delete", "force-delete", "deactivate"}, calls)
	})

	t.Run("forced delete attempted before soft delete", func(t *testing.T) {
		calls = nil
		name, err := runDeleteCascade([]deleteStrategy{
			failing("delete"),
			succeeding("force-delete"),
			succeeding("deactivate"),
		})
		require.NoError(t, err)
		assert.Equal(t, "force-delete", name)
		assert.Equal(t, []string{"delete", "force-delete"}, calls)
	})

	t.Run("all tiers fail", func(t *testing.T) {
		calls = nil
		_, err := runDeleteCascade([]deleteStrategy{
			failing("delete"),
			failing("force-delete"),
			failing("deactivate"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deactivate rejected")
		assert.Equal(t, []string{"delete", "force-delete", "deactivate"}, calls)
	})
}

func TestPlanSync(t *testing.T) {
	existing := uuid.New()
	rows := []models.Availability{
		{Weekday: models.WeekdayMonday, Start: "08:00", End: "17:00"},
		{ID: existing, Weekday: models.WeekdayTuesday, Start: "09:00", End: "12:00"},
		{Weekday: models.WeekdayFriday, Start: "13:00", End: "18:00"},
	}

	plan := PlanSync(rows)
	require.Len(t, plan.Inserts, 2)
	require.Len(t, plan.Updates, 1)
	assert.Equal(t, existing, plan.Updates[0].ID)

	// resubmitting the saved result only produces updates
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}
	plan = PlanSync(rows)
	assert.Empty(t, plan.Inserts)
	assert.Len(t, plan.Updates, 3)
}

func TestValidateRow(t *testing.T) {
	valid := models.Availability{Weekday: models.WeekdayMonday, Start: "08:00", End: "17:00"}
	assert.NoError(t, ValidateRow(valid))

	bad := valid
	bad.Weekday = "monday"
	assert.ErrorIs(t, ValidateRow(bad), ErrInvalidWeekday)

	bad = valid
	bad.Start, bad.End = "17:00", "08:00"
	assert.ErrorIs(t, ValidateRow(bad), ErrInvalidTimeRange)

	bad = valid
	bad.Start, bad.End = "09:00", "09:00"
	assert.ErrorIs(t, ValidateRow(bad), ErrInvalidTimeRange)

	bad = valid
	bad.End = ""
	assert.ErrorIs(t, ValidateRow(bad), ErrInvalidTimeRange)

	bad = valid
	bad.Start = "25:00"
	assert.Error(t, ValidateRow(bad))
}
