package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier — общий знаменатель pgxpool.Pool, pgx.Tx и pgxmock.
// Репозитории работают через него, поэтому один и тот же метод
// одинаково выполняется и в транзакции, и вне её.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// DB — то, что умеет и выполнять запросы, и открывать транзакции.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

const uniqueViolationCode = "23505"

// isUniqueViolation проверяет нарушение конкретного уникального ограничения.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
	}
	return false
}
