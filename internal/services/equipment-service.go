package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	GetEquipmentRequests(ctx context.Context, equipmentID uint64) ([]entities.Request, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.checkTeamExists(ctx, payload.TeamID); err != nil {
		return nil, err
	}

	id, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.checkTeamExists(ctx, payload.TeamID); err != nil {
		return nil, err
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}

// GetEquipmentRequests возвращает историю обслуживания единицы оборудования.
func (s *EquipmentService) GetEquipmentRequests(ctx context.Context, equipmentID uint64) ([]entities.Request, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.requestRepo.GetRequestsByEquipment(ctx, equipmentID)
}

func (s *EquipmentService) checkTeamExists(ctx context.Context, teamID *uint64) error {
	if teamID == nil {
		return nil
	}
	if _, err := s.teamRepo.FindTeam(ctx, *teamID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewInvalidInputError("команда с id=%d не найдена", *teamID)
		}
		return err
	}
	return nil
}
