package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/lifecycle"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

func newRequestRepoMock(t *testing.T) (pgxmock.PgxPoolIface, RequestRepositoryInterface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewRequestRepository(mock, zap.NewNop())
}

func requestRowColumns() []string {
	return []string{
		"id", "type", "subject", "description", "equipment_id",
		"department", "team_id", "assigned_to", "priority", "status",
		"scheduled_date", "duration", "completed_date", "created_by",
		"created_at", "updated_at",
	}
}

func TestFindRequestForUpdate_LocksRow(t *testing.T) {
	mock, repo := newRequestRepoMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)SELECT .+ FROM requests r\s+WHERE r\.id = \$1\s+FOR UPDATE`).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows(requestRowColumns()).
			AddRow(uint64(7), constants.RequestTypeCorrective, "Станок не запускается", nil, uint64(3),
				nil, nil, nil, constants.PriorityHigh, constants.RequestStatusInProgress,
				nil, nil, nil, uint64(1), now, now))

	request, err := repo.FindRequestForUpdate(context.Background(), mock, 7)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), request.ID)
	assert.Equal(t, constants.RequestStatusInProgress, request.Status)
	assert.Equal(t, uint64(3), request.EquipmentID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRequestForUpdate_NotFound(t *testing.T) {
	mock, repo := newRequestRepoMock(t)

	mock.ExpectQuery(`(?s)SELECT .+ FOR UPDATE`).
		WithArgs(uint64(99)).
		WillReturnRows(pgxmock.NewRows(requestRowColumns()))

	_, err := repo.FindRequestForUpdate(context.Background(), mock, 99)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatusChange_WritesComputedFields(t *testing.T) {
	mock, repo := newRequestRepoMock(t)

	duration := 2.5
	completedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	change := &lifecycle.Change{
		Status:        constants.RequestStatusRepaired,
		Duration:      &duration,
		CompletedDate: &completedAt,
	}

	mock.ExpectExec(`UPDATE requests`).
		WithArgs(constants.RequestStatusRepaired, &duration, &completedAt, uint64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ApplyStatusChange(context.Background(), mock, 7, change)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatusChange_NotFound(t *testing.T) {
	mock, repo := newRequestRepoMock(t)

	change := &lifecycle.Change{Status: constants.RequestStatusInProgress}

	mock.ExpectExec(`UPDATE requests`).
		WithArgs(constants.RequestStatusInProgress, pgxmock.AnyArg(), pgxmock.AnyArg(), uint64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.ApplyStatusChange(context.Background(), mock, 99, change)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestAssignRequest_NotFound(t *testing.T) {
	mock, repo := newRequestRepoMock(t)

	userID := uint64(4)
	mock.ExpectExec(`UPDATE requests SET assigned_to`).
		WithArgs(&userID, uint64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.AssignRequest(context.Background(), 99, &userID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
