package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/customvalidator"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"
)

// stubRequestService подменяет сервис заявок: каждый метод можно
// переопределить в конкретном тесте.
type stubRequestService struct {
	changeStatusFn func(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error)
}

func (s *stubRequestService) GetRequests(ctx context.Context, filter types.Filter) ([]entities.RequestWithRelations, uint64, error) {
	return nil, 0, nil
}

func (s *stubRequestService) FindRequest(ctx context.Context, id uint64) (*entities.RequestWithRelations, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubRequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO, createdBy uint64) (*entities.RequestWithRelations, error) {
	return nil, nil
}

func (s *stubRequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*entities.RequestWithRelations, error) {
	return nil, nil
}

func (s *stubRequestService) DeleteRequest(ctx context.Context, id uint64) error {
	return nil
}

func (s *stubRequestService) ChangeStatus(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error) {
	return s.changeStatusFn(ctx, id, payload)
}

func (s *stubRequestService) AssignRequest(ctx context.Context, id uint64, payload dto.AssignRequestDTO, actorID uint64) (*entities.RequestWithRelations, error) {
	return nil, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

func doChangeStatus(t *testing.T, svc *stubRequestService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho(t)
	ctrl := NewRequestController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/api/requests/7/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/api/requests/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, ctrl.ChangeStatus(c))
	return rec
}

func TestChangeStatus_OK(t *testing.T) {
	svc := &stubRequestService{
		changeStatusFn: func(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error) {
			assert.Equal(t, uint64(7), id)
			assert.Equal(t, constants.RequestStatusInProgress, payload.Status)
			return &entities.RequestWithRelations{
				Request: entities.Request{ID: id, Status: payload.Status},
			}, nil
		},
	}

	rec := doChangeStatus(t, svc, `{"status":"in_progress"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"in_progress"`)
}

func TestChangeStatus_InvalidTransitionIsConflict(t *testing.T) {
	svc := &stubRequestService{
		changeStatusFn: func(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error) {
			return nil, apperrors.ErrInvalidTransition
		},
	}

	rec := doChangeStatus(t, svc, `{"status":"repaired","duration":2}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestChangeStatus_UnknownStatusIsBadRequest(t *testing.T) {
	// До сервиса дело не доходит: статус отсекает валидатор DTO.
	svc := &stubRequestService{
		changeStatusFn: func(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error) {
			t.Fatal("сервис не должен вызываться при невалидном статусе")
			return nil, nil
		},
	}

	rec := doChangeStatus(t, svc, `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeStatus_NegativeDurationIsBadRequest(t *testing.T) {
	svc := &stubRequestService{
		changeStatusFn: func(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error) {
			t.Fatal("сервис не должен вызываться при невалидной длительности")
			return nil, nil
		},
	}

	rec := doChangeStatus(t, svc, `{"status":"repaired","duration":-2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
