package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountChars(t *testing.T) {
	total, nonSpace := CountChars("연남 수제비\n맛집")
	assert.Equal(t, 9, total)
	assert.Equal(t, 7, nonSpace)

	total, nonSpace = CountChars("")
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, nonSpace)
}
