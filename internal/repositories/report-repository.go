package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/pkg/constants"
)

type ReportRepositoryInterface interface {
	GetSummary(ctx context.Context) (*dto.SummaryReportDTO, error)
}

type ReportRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewReportRepository(storage Querier, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

func (r *ReportRepository) GetSummary(ctx context.Context) (*dto.SummaryReportDTO, error) {
	summary := &dto.SummaryReportDTO{}

	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(duration) FILTER (WHERE status = $1), 0) FROM requests`,
		constants.RequestStatusRepaired,
	).Scan(&summary.TotalRequests, &summary.AvgRepairHours)
	if err != nil {
		return nil, err
	}

	var groupErr error
	summary.ByStatus, groupErr = r.groupCount(ctx, "status")
	if groupErr != nil {
		return nil, groupErr
	}
	summary.ByPriority, groupErr = r.groupCount(ctx, "priority")
	if groupErr != nil {
		return nil, groupErr
	}
	summary.ByType, groupErr = r.groupCount(ctx, "type")
	if groupErr != nil {
		return nil, groupErr
	}

	summary.OpenByTeam, err = r.openByTeam(ctx)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *ReportRepository) groupCount(ctx context.Context, column string) ([]dto.GroupCountDTO, error) {
	query, args, err := sq.Select(column, "COUNT(*)").
		From("requests").
		GroupBy(column).
		OrderBy(column).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []dto.GroupCountDTO
	for rows.Next() {
		var g dto.GroupCountDTO
		if err := rows.Scan(&g.Group, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// openByTeam считает незакрытые заявки по командам.
// Нераспределённые заявки попадают в отдельную группу.
func (r *ReportRepository) openByTeam(ctx context.Context) ([]dto.GroupCountDTO, error) {
	query, args, err := sq.Select("COALESCE(t.name, 'без команды')", "COUNT(*)").
		From("requests r").
		LeftJoin("teams t ON t.id = r.team_id").
		Where(sq.Eq{"r.status": []string{constants.RequestStatusNew, constants.RequestStatusInProgress}}).
		GroupBy("t.name").
		OrderBy("COUNT(*) DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []dto.GroupCountDTO
	for rows.Next() {
		var g dto.GroupCountDTO
		if err := rows.Scan(&g.Group, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
