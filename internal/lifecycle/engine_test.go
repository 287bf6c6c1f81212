package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"новая берётся в работу", constants.RequestStatusNew, constants.RequestStatusInProgress, true},
		{"новая списывается", constants.RequestStatusNew, constants.RequestStatusScrap, true},
		{"из работы в отремонтирована", constants.RequestStatusInProgress, constants.RequestStatusRepaired, true},
		{"из работы в списание", constants.RequestStatusInProgress, constants.RequestStatusScrap, true},

		{"нельзя завершить без работы", constants.RequestStatusNew, constants.RequestStatusRepaired, false},
		{"нельзя вернуть в новые", constants.RequestStatusInProgress, constants.RequestStatusNew, false},
		{"отремонтированная закрыта", constants.RequestStatusRepaired, constants.RequestStatusInProgress, false},
		{"отремонтированную не списать", constants.RequestStatusRepaired, constants.RequestStatusScrap, false},
		{"списанная закрыта", constants.RequestStatusScrap, constants.RequestStatusNew, false},
		{"переход в себя запрещён", constants.RequestStatusNew, constants.RequestStatusNew, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestComputeChange_TakeInProgress(t *testing.T) {
	now := time.Now()

	change, err := ComputeChange(constants.RequestStatusNew, constants.RequestStatusInProgress, nil, now)
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusInProgress, change.Status)
	assert.Nil(t, change.Duration)
	assert.Nil(t, change.CompletedDate)
	assert.False(t, change.ScrapEquipment)
}

func TestComputeChange_Repaired(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	duration := 2.5

	change, err := ComputeChange(constants.RequestStatusInProgress, constants.RequestStatusRepaired, &duration, now)
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusRepaired, change.Status)
	require.NotNil(t, change.Duration)
	assert.Equal(t, 2.5, *change.Duration)
	require.NotNil(t, change.CompletedDate)
	assert.Equal(t, now, *change.CompletedDate)
	assert.False(t, change.ScrapEquipment)
}

func TestComputeChange_RepairedRequiresDuration(t *testing.T) {
	var invalidInput *apperrors.InvalidInputError

	_, err := ComputeChange(constants.RequestStatusInProgress, constants.RequestStatusRepaired, nil, time.Now())
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidInput)

	zero := 0.0
	_, err = ComputeChange(constants.RequestStatusInProgress, constants.RequestStatusRepaired, &zero, time.Now())
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidInput)

	negative := -1.5
	_, err = ComputeChange(constants.RequestStatusInProgress, constants.RequestStatusRepaired, &negative, time.Now())
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidInput)
}

func TestComputeChange_ScrapCascades(t *testing.T) {
	for _, from := range []string{constants.RequestStatusNew, constants.RequestStatusInProgress} {
		change, err := ComputeChange(from, constants.RequestStatusScrap, nil, time.Now())
		require.NoError(t, err)

		assert.Equal(t, constants.RequestStatusScrap, change.Status)
		assert.True(t, change.ScrapEquipment)
		assert.Nil(t, change.Duration)
		assert.Nil(t, change.CompletedDate)
	}
}

func TestComputeChange_ScrapIgnoresDuration(t *testing.T) {
	// Длительность имеет смысл только для ремонта.
	duration := 4.0

	change, err := ComputeChange(constants.RequestStatusNew, constants.RequestStatusScrap, &duration, time.Now())
	require.NoError(t, err)
	assert.Nil(t, change.Duration)
}

func TestComputeChange_InvalidTransition(t *testing.T) {
	duration := 1.0

	_, err := ComputeChange(constants.RequestStatusNew, constants.RequestStatusRepaired, &duration, time.Now())
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))

	_, err = ComputeChange(constants.RequestStatusRepaired, constants.RequestStatusScrap, nil, time.Now())
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))

	_, err = ComputeChange(constants.RequestStatusScrap, constants.RequestStatusInProgress, nil, time.Now())
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
}

func TestComputeChange_UnknownStatus(t *testing.T) {
	var invalidInput *apperrors.InvalidInputError

	_, err := ComputeChange(constants.RequestStatusNew, "cancelled", nil, time.Now())
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidInput)
}
