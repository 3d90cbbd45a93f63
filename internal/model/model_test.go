package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureTypeFromInt(t *testing.T) {
	for value, want := range map[int]MeasureType{
		0: MeasureUnit,
		1: MeasureLength,
		2: MeasureArea,
		3: MeasureWeight,
	} {
		got, err := MeasureTypeFromInt(value)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := MeasureTypeFromInt(4)
	assert.Error(t, err)
	_, err = MeasureTypeFromInt(-1)
	assert.Error(t, err)
}

func TestWorkWeekTotalMinutes(t *testing.T) {
	var week WorkWeek
	for i, m := range [7]int{9, 7, 4, 56, 100, 235, 343} {
		week.Days[i] = WorkDay{Day: Weekday(i), Minutes: m}
	}
	assert.Equal(t, 754, week.TotalMinutes())
}
