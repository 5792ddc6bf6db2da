package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida", func(t *testing.T) {
		date, err := ParseDate("2026-02-10")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("Formato inválido", func(t *testing.T) {
		_, err := ParseDate("10/02/2026")
		assert.Error(t, err)
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-02-10", FormatDate(time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestMonthRange(t *testing.T) {
	t.Run("Período válido cobre o mês inteiro", func(t *testing.T) {
		start, end, err := MonthRange("02-2026")
		assert.NoError(t, err)

		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
		assert.True(t, end.After(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)))
		assert.True(t, end.Before(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Período inválido", func(t *testing.T) {
		_, _, err := MonthRange("2026-02")
		assert.Error(t, err)

		_, _, err = MonthRange("13-2026")
		assert.Error(t, err)
	})
}
