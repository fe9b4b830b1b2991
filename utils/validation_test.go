package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+5511912345678",
		"(11) 91234-5678",
		"11912345678",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"abc",
		"0123",
		"+",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}
