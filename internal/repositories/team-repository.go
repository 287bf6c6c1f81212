package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

const teamFields = "id, name, description, icon, specialization, created_at, updated_at"

var teamFilterColumns = map[string]string{
	"specialization": "specialization",
	"created_at":     "created_at",
	"name":           "name",
}

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error
	DeleteTeam(ctx context.Context, id uint64) error
	GetTeamMembers(ctx context.Context, teamID uint64) ([]entities.User, error)
	AddTeamMember(ctx context.Context, teamID, userID uint64) error
	RemoveTeamMember(ctx context.Context, teamID, userID uint64) error
}

type TeamRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewTeamRepository(storage Querier, logger *zap.Logger) TeamRepositoryInterface {
	return &TeamRepository{storage: storage, logger: logger}
}

func (r *TeamRepository) GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error) {
	builder := sq.Select(teamFields).From("teams").PlaceholderFormat(sq.Dollar)
	builder = applySearch(builder, filter.Search, []string{"name", "specialization"})
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("created_at ASC")
	}
	builder = applyListParams(builder, filter, teamFilterColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var teams []entities.Team
	for rows.Next() {
		var t entities.Team
		if err := scanTeam(rows, &t); err != nil {
			return nil, 0, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	query := `SELECT ` + teamFields + ` FROM teams WHERE id = $1`

	var t entities.Team
	if err := scanTeam(r.storage.QueryRow(ctx, query, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error) {
	query := `
		INSERT INTO teams (name, description, icon, specialization)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.Name,
		payload.Description,
		payload.Icon,
		payload.Specialization,
	).Scan(&id)
	if err != nil {
		r.logger.Error("CreateTeam: ошибка вставки команды", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error {
	builder := sq.Update("teams").PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
	}
	if payload.Icon != nil {
		builder = builder.Set("icon", *payload.Icon)
	}
	if payload.Specialization != nil {
		builder = builder.Set("specialization", *payload.Specialization)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) GetTeamMembers(ctx context.Context, teamID uint64) ([]entities.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password, u.phone, u.role, u.created_at, u.updated_at
		FROM users u
			JOIN team_members tm ON tm.user_id = u.id
		WHERE tm.team_id = $1
		ORDER BY u.name
	`

	rows, err := r.storage.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []entities.User
	for rows.Next() {
		var u entities.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		members = append(members, u)
	}
	return members, rows.Err()
}

func (r *TeamRepository) AddTeamMember(ctx context.Context, teamID, userID uint64) error {
	query := `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`

	_, err := r.storage.Exec(ctx, query, teamID, userID)
	if err != nil {
		if isUniqueViolation(err, "team_members_pkey") {
			return apperrors.ErrDuplicateTeamMember
		}
		return err
	}
	return nil
}

// RemoveTeamMember удаляет пару (team_id, user_id).
// Отсутствующая пара — это NotFound, а не no-op.
func (r *TeamRepository) RemoveTeamMember(ctx context.Context, teamID, userID uint64) error {
	result, err := r.storage.Exec(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanTeam(row pgx.Row, t *entities.Team) error {
	return row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Icon,
		&t.Specialization,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}
