package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfWeek(t *testing.T) {
	// 2024-03-15 is a Friday; the week starts on Sunday 2024-03-10
	friday := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), BeginningOfWeek(friday))

	sunday := time.Date(2024, 3, 10, 23, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), BeginningOfWeek(sunday))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 3, 10, 22, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 15, 1, 0, 0, 0, time.Local)
	assert.Equal(t, 5, DaysBetween(start, end))
}
