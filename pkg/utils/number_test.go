package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.566))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.564))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.333))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "10.57", FormatMoney(10.566))
	assert.Equal(t, "100.00", FormatMoney(100))
	assert.Equal(t, "0.00", FormatMoney(0))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "42", FormatNumber(42))
	assert.Equal(t, "3.5", FormatNumber(3.5))
}
