package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidWeekday(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, ValidWeekday(day), day)
	}
	assert.Len(t, Weekdays, 7)

	assert.False(t, ValidWeekday("monday"))
	assert.False(t, ValidWeekday("Segunda"))
	assert.False(t, ValidWeekday(""))
}
