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

type TeamServiceInterface interface {
	GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id uint64) error
	AddTeamMember(ctx context.Context, teamID, userID uint64) error
	RemoveTeamMember(ctx context.Context, teamID, userID uint64) error
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo, userRepo: userRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error) {
	return s.teamRepo.GetTeams(ctx, filter)
}

// FindTeam возвращает команду вместе с её участниками.
func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.teamRepo.GetTeamMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error) {
	id, err := s.teamRepo.CreateTeam(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*entities.Team, error) {
	if err := s.teamRepo.UpdateTeam(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}

func (s *TeamService) AddTeamMember(ctx context.Context, teamID, userID uint64) error {
	if _, err := s.teamRepo.FindTeam(ctx, teamID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewInvalidInputError("пользователь с id=%d не найден", userID)
		}
		return err
	}
	return s.teamRepo.AddTeamMember(ctx, teamID, userID)
}

func (s *TeamService) RemoveTeamMember(ctx context.Context, teamID, userID uint64) error {
	return s.teamRepo.RemoveTeamMember(ctx, teamID, userID)
}
