package controllers

import (
	"testing"
	"time"

	"agendapro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimestamps(t *testing.T) {
	input := AppointmentInput{
		Date:  "2024-03-15",
		Start: "10:00",
		End:   "11:30",
	}

	start, end, err := input.buildTimestamps()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 3, 15, 11, 30, 0, 0, time.Local), end)
}

func TestBuildTimestampsInvalid(t *testing.T) {
	input := AppointmentInput{Date: "15/03/2024", Start: "10:00", End: "11:00"}
	_, _, err := input.buildTimestamps()
	assert.Error(t, err)

	input = AppointmentInput{Date: "2024-03-15", Start: "10h00", End: "11:00"}
	_, _, err = input.buildTimestamps()
	assert.Error(t, err)

	input = AppointmentInput{Date: "2024-03-15", Start: "10:00", End: "25:00"}
	_, _, err = input.buildTimestamps()
	assert.Error(t, err)
}

func TestAppointmentView(t *testing.T) {
	appointment := models.Appointment{
		StartsAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local),
		EndsAt:   time.Date(2024, 3, 15, 11, 0, 0, 0, time.Local),
	}

	view := appointmentView(appointment)
	assert.Equal(t, 47, view.GridTop)
	assert.Equal(t, 94, view.GridHeight)

	// sub-hour precision truncates to the hour bucket, and a block inside a
	// single hour still renders one row tall
	appointment.StartsAt = time.Date(2024, 3, 15, 10, 15, 0, 0, time.Local)
	appointment.EndsAt = time.Date(2024, 3, 15, 10, 45, 0, 0, time.Local)
	view = appointmentView(appointment)
	assert.Equal(t, 94, view.GridTop)
	assert.Equal(t, 47, view.GridHeight)
}
