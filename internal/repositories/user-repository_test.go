package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

func newUserRepoMock(t *testing.T) (pgxmock.PgxPoolIface, UserRepositoryInterface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock, zap.NewNop())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	pgErr := &pgconn.PgError{
		Code:           uniqueViolationCode,
		ConstraintName: "users_email_key",
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Анна", "anna@maintenance.local", "hash", "", constants.RoleUser).
		WillReturnError(pgErr)

	_, err := repo.CreateUser(context.Background(), &entities.User{
		Name:     "Анна",
		Email:    "anna@maintenance.local",
		Password: "hash",
		Role:     constants.RoleUser,
	})

	assert.True(t, errors.Is(err, apperrors.ErrDuplicateEmail))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_NotFound(t *testing.T) {
	mock, repo := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(uint64(42)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "password", "phone", "role", "created_at", "updated_at",
		}))

	_, err := repo.FindUserByID(context.Background(), 42)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestFindUserByEmail(t *testing.T) {
	mock, repo := newUserRepoMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("anna@maintenance.local").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "password", "phone", "role", "created_at", "updated_at",
		}).AddRow(uint64(1), "Анна", "anna@maintenance.local", "hash", "", constants.RoleUser, now, now))

	user, err := repo.FindUserByEmail(context.Background(), "anna@maintenance.local")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), user.ID)
	assert.Equal(t, constants.RoleUser, user.Role)
}
