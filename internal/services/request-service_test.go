package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

// newRequestServiceMock собирает сервис на полностью замоканном пуле:
// и репозитории, и менеджер транзакций работают через один pgxmock.
func newRequestServiceMock(t *testing.T) (pgxmock.PgxPoolIface, RequestServiceInterface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zap.NewNop()
	requestRepo := repositories.NewRequestRepository(mock, logger)
	equipmentRepo := repositories.NewEquipmentRepository(mock, logger)
	teamRepo := repositories.NewTeamRepository(mock, logger)
	userRepo := repositories.NewUserRepository(mock, logger)
	txManager := repositories.NewTxManager(mock)

	svc := NewRequestService(requestRepo, equipmentRepo, teamRepo, userRepo, txManager, logger)
	return mock, svc
}

func requestColumns() []string {
	return []string{
		"id", "type", "subject", "description", "equipment_id",
		"department", "team_id", "assigned_to", "priority", "status",
		"scheduled_date", "duration", "completed_date", "created_by",
		"created_at", "updated_at",
	}
}

func requestWithRelationsColumns() []string {
	return append(requestColumns(),
		"e_id", "e_name", "e_serial_number", "e_status",
		"t_id", "t_name",
		"au_id", "au_name", "au_email",
		"cu_id", "cu_name", "cu_email",
	)
}

func lockedRequestRow(id, equipmentID uint64, status string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(requestColumns()).
		AddRow(id, constants.RequestTypeCorrective, "Станок не запускается", nil, equipmentID,
			nil, nil, nil, constants.PriorityHigh, status,
			nil, nil, nil, uint64(1), now, now)
}

func reloadedRequestRow(id, equipmentID uint64, status string) *pgxmock.Rows {
	now := time.Now()
	eqName, eqSerial, eqStatus := "Токарный станок", "TV-320-001", constants.EquipmentStatusScrapped
	creatorID := uint64(1)
	creatorName, creatorEmail := "Администратор", "admin@maintenance.local"
	return pgxmock.NewRows(requestWithRelationsColumns()).
		AddRow(id, constants.RequestTypeCorrective, "Станок не запускается", nil, equipmentID,
			nil, nil, nil, constants.PriorityHigh, status,
			nil, nil, nil, uint64(1), now, now,
			&equipmentID, &eqName, &eqSerial, &eqStatus,
			nil, nil,
			nil, nil, nil,
			&creatorID, &creatorName, &creatorEmail)
}

// Списание заявки должно в одной транзакции менять и заявку,
// и статус её оборудования.
func TestChangeStatus_ScrapCascadesToEquipment(t *testing.T) {
	mock, svc := newRequestServiceMock(t)

	const requestID, equipmentID = uint64(7), uint64(3)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT .+ FOR UPDATE`).
		WithArgs(requestID).
		WillReturnRows(lockedRequestRow(requestID, equipmentID, constants.RequestStatusInProgress))
	mock.ExpectExec(`UPDATE requests`).
		WithArgs(constants.RequestStatusScrap, pgxmock.AnyArg(), pgxmock.AnyArg(), requestID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE equipments SET status`).
		WithArgs(constants.EquipmentStatusScrapped, equipmentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`(?s)SELECT .+ FROM requests r LEFT JOIN`).
		WithArgs(requestID).
		WillReturnRows(reloadedRequestRow(requestID, equipmentID, constants.RequestStatusScrap))

	request, err := svc.ChangeStatus(context.Background(), requestID,
		dto.ChangeRequestStatusDTO{Status: constants.RequestStatusScrap})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusScrap, request.Status)
	require.NotNil(t, request.Equipment)
	assert.Equal(t, constants.EquipmentStatusScrapped, request.Equipment.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Недопустимый переход откатывает транзакцию, никакие записи не меняются.
func TestChangeStatus_InvalidTransitionRollsBack(t *testing.T) {
	mock, svc := newRequestServiceMock(t)

	const requestID = uint64(7)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT .+ FOR UPDATE`).
		WithArgs(requestID).
		WillReturnRows(lockedRequestRow(requestID, 3, constants.RequestStatusRepaired))
	mock.ExpectRollback()

	_, err := svc.ChangeStatus(context.Background(), requestID,
		dto.ChangeRequestStatusDTO{Status: constants.RequestStatusScrap})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Если не удалось списать оборудование, транзакция откатывается целиком:
// заявка не должна остаться списанной при живом оборудовании.
func TestChangeStatus_EquipmentFailureRollsBackRequest(t *testing.T) {
	mock, svc := newRequestServiceMock(t)

	const requestID, equipmentID = uint64(7), uint64(3)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT .+ FOR UPDATE`).
		WithArgs(requestID).
		WillReturnRows(lockedRequestRow(requestID, equipmentID, constants.RequestStatusNew))
	mock.ExpectExec(`UPDATE requests`).
		WithArgs(constants.RequestStatusScrap, pgxmock.AnyArg(), pgxmock.AnyArg(), requestID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE equipments SET status`).
		WithArgs(constants.EquipmentStatusScrapped, equipmentID).
		WillReturnError(errors.New("соединение разорвано"))
	mock.ExpectRollback()

	_, err := svc.ChangeStatus(context.Background(), requestID,
		dto.ChangeRequestStatusDTO{Status: constants.RequestStatusScrap})
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangeStatus_RepairedSetsDurationAndCompletedDate(t *testing.T) {
	mock, svc := newRequestServiceMock(t)

	const requestID = uint64(7)
	duration := 2.5

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT .+ FOR UPDATE`).
		WithArgs(requestID).
		WillReturnRows(lockedRequestRow(requestID, 3, constants.RequestStatusInProgress))
	mock.ExpectExec(`UPDATE requests`).
		WithArgs(constants.RequestStatusRepaired, &duration, pgxmock.AnyArg(), requestID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`(?s)SELECT .+ FROM requests r LEFT JOIN`).
		WithArgs(requestID).
		WillReturnRows(reloadedRequestRow(requestID, 3, constants.RequestStatusRepaired))

	_, err := svc.ChangeStatus(context.Background(), requestID,
		dto.ChangeRequestStatusDTO{Status: constants.RequestStatusRepaired, Duration: &duration})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangeStatus_RepairedWithoutDuration(t *testing.T) {
	mock, svc := newRequestServiceMock(t)

	const requestID = uint64(7)

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT .+ FOR UPDATE`).
		WithArgs(requestID).
		WillReturnRows(lockedRequestRow(requestID, 3, constants.RequestStatusInProgress))
	mock.ExpectRollback()

	var invalidInput *apperrors.InvalidInputError
	_, err := svc.ChangeStatus(context.Background(), requestID,
		dto.ChangeRequestStatusDTO{Status: constants.RequestStatusRepaired})
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidInput)

	assert.NoError(t, mock.ExpectationsWereMet())
}
