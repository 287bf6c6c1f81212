package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/lifecycle"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.RequestWithRelations, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.RequestWithRelations, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO, createdBy uint64) (*entities.RequestWithRelations, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*entities.RequestWithRelations, error)
	DeleteRequest(ctx context.Context, id uint64) error
	ChangeStatus(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error)
	AssignRequest(ctx context.Context, id uint64, payload dto.AssignRequestDTO, actorID uint64) (*entities.RequestWithRelations, error)
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter types.Filter) ([]entities.RequestWithRelations, uint64, error) {
	return s.requestRepo.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*entities.RequestWithRelations, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO, createdBy uint64) (*entities.RequestWithRelations, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("оборудование с id=%d не найдено", payload.EquipmentID)
		}
		return nil, err
	}
	if equipment.Status == constants.EquipmentStatusScrapped {
		return nil, apperrors.NewInvalidInputError("оборудование с id=%d списано, заявки по нему не создаются", payload.EquipmentID)
	}

	if payload.TeamID != nil {
		if _, err := s.teamRepo.FindTeam(ctx, *payload.TeamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewInvalidInputError("команда с id=%d не найдена", *payload.TeamID)
			}
			return nil, err
		}
	}
	if payload.AssignedTo != nil {
		if _, err := s.userRepo.FindUserByID(ctx, *payload.AssignedTo); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewInvalidInputError("исполнитель с id=%d не найден", *payload.AssignedTo)
			}
			return nil, err
		}
	}

	if payload.Priority == "" {
		payload.Priority = constants.PriorityMedium
	}
	// Департамент по умолчанию наследуется от оборудования.
	if payload.Department == nil && equipment.Department != "" {
		payload.Department = &equipment.Department
	}

	id, err := s.requestRepo.CreateRequest(ctx, payload, createdBy)
	if err != nil {
		return nil, err
	}

	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*entities.RequestWithRelations, error) {
	if payload.TeamID != nil {
		if _, err := s.teamRepo.FindTeam(ctx, *payload.TeamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewInvalidInputError("команда с id=%d не найдена", *payload.TeamID)
			}
			return nil, err
		}
	}

	if err := s.requestRepo.UpdateRequest(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}

// ChangeStatus выполняет переход заявки по машине состояний.
// Заявка читается с блокировкой строки, переход рассчитывается движком,
// запись изменений и списание оборудования идут в одной транзакции.
func (s *RequestService) ChangeStatus(ctx context.Context, id uint64, payload dto.ChangeRequestStatusDTO) (*entities.RequestWithRelations, error) {
	err := s.txManager.RunInTransaction(ctx, func(q repositories.Querier) error {
		request, err := s.requestRepo.FindRequestForUpdate(ctx, q, id)
		if err != nil {
			return err
		}

		change, err := lifecycle.ComputeChange(request.Status, payload.Status, payload.Duration, time.Now())
		if err != nil {
			return err
		}

		if err := s.requestRepo.ApplyStatusChange(ctx, q, id, change); err != nil {
			return err
		}

		if change.ScrapEquipment {
			if err := s.equipmentRepo.UpdateEquipmentStatus(ctx, q, request.EquipmentID, constants.EquipmentStatusScrapped); err != nil {
				return err
			}
			s.logger.Info("Оборудование списано вместе с заявкой",
				zap.Uint64("request_id", id),
				zap.Uint64("equipment_id", request.EquipmentID))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.requestRepo.FindRequest(ctx, id)
}

// AssignRequest назначает исполнителя. Пустой user_id в запросе означает
// самоназначение: исполнителем становится сам вызывающий.
func (s *RequestService) AssignRequest(ctx context.Context, id uint64, payload dto.AssignRequestDTO, actorID uint64) (*entities.RequestWithRelations, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if constants.IsTerminalRequestStatus(request.Status) {
		return nil, apperrors.ErrInvalidTransition
	}

	userID := actorID
	if payload.UserID != nil {
		userID = *payload.UserID
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidInputError("исполнитель с id=%d не найден", userID)
		}
		return nil, err
	}

	if err := s.requestRepo.AssignRequest(ctx, id, &userID); err != nil {
		return nil, err
	}

	return s.requestRepo.FindRequest(ctx, id)
}
