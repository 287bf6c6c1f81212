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

const userFields = "id, name, email, password, phone, role, created_at, updated_at"

var userFilterColumns = map[string]string{
	"role":       "role",
	"created_at": "created_at",
	"name":       "name",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (uint64, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage Querier, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	builder := sq.Select(userFields).From("users").PlaceholderFormat(sq.Dollar)
	builder = applySearch(builder, filter.Search, []string{"name", "email"})
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("created_at ASC")
	}
	builder = applyListParams(builder, filter, userFilterColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		var u entities.User
		if err := scanUser(rows, &u); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countBuilder := sq.Select("COUNT(*)").From("users").PlaceholderFormat(sq.Dollar)
	countBuilder = applySearch(countBuilder, filter.Search, []string{"name", "email"})
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := `SELECT ` + userFields + ` FROM users WHERE id = $1`

	var u entities.User
	if err := scanUser(r.storage.QueryRow(ctx, query, id), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userFields + ` FROM users WHERE email = $1`

	var u entities.User
	if err := scanUser(r.storage.QueryRow(ctx, query, email), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (uint64, error) {
	query := `
		INSERT INTO users (name, email, password, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Phone,
		user.Role,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return 0, apperrors.ErrDuplicateEmail
		}
		r.logger.Error("CreateUser: ошибка вставки пользователя", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) error {
	builder := sq.Update("users").PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Phone != nil {
		builder = builder.Set("phone", *payload.Phone)
	}
	if payload.Role != nil {
		builder = builder.Set("role", *payload.Role)
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

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	query := `UPDATE users SET password = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.storage.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row, u *entities.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.Phone,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}
