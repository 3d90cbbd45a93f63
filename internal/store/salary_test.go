package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villela/precificador/internal/model"
)

func TestSalaryInfoAlwaysExistsAfterMigrations(t *testing.T) {
	s := newTestStore(t)

	info, err := s.SalaryInfo()
	require.NoError(t, err)

	assert.Zero(t, info.Salary)
	for i, day := range info.Week.Days {
		assert.Equal(t, model.Weekday(i), day.Day)
		assert.Zero(t, day.Minutes)
	}
}

func TestUpdateSalaryInfoRoundTrip(t *testing.T) {
	s := newTestStore(t)

	minutes := [7]int{9, 7, 4, 56, 100, 235, 343}
	require.NoError(t, s.UpdateSalaryInfo(1000, minutes))

	info, err := s.SalaryInfo()
	require.NoError(t, err)

	assert.EqualValues(t, 1000, info.Salary)
	for i, day := range info.Week.Days {
		assert.Equal(t, minutes[i], day.Minutes)
	}
	assert.Equal(t, 754, info.Week.TotalMinutes())
}
