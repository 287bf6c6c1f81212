package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/lifecycle"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

const requestFields = `r.id, r.type, r.subject, r.description, r.equipment_id,
	r.department, r.team_id, r.assigned_to, r.priority, r.status,
	r.scheduled_date, r.duration, r.completed_date, r.created_by,
	r.created_at, r.updated_at`

const requestRelationFields = `e.id, e.name, e.serial_number, e.status,
	t.id, t.name,
	au.id, au.name, au.email,
	cu.id, cu.name, cu.email`

var requestFilterColumns = map[string]string{
	"status":         "r.status",
	"type":           "r.type",
	"priority":       "r.priority",
	"team_id":        "r.team_id",
	"equipment_id":   "r.equipment_id",
	"assigned_to":    "r.assigned_to",
	"created_by":     "r.created_by",
	"department":     "r.department",
	"created_at":     "r.created_at",
	"scheduled_date": "r.scheduled_date",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.RequestWithRelations, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.RequestWithRelations, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.Request, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO, createdBy uint64) (uint64, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) error
	DeleteRequest(ctx context.Context, id uint64) error
	AssignRequest(ctx context.Context, id uint64, userID *uint64) error
	FindRequestForUpdate(ctx context.Context, q Querier, id uint64) (*entities.Request, error)
	ApplyStatusChange(ctx context.Context, q Querier, id uint64, change *lifecycle.Change) error
}

type RequestRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewRequestRepository(storage Querier, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func (r *RequestRepository) baseSelect() sq.SelectBuilder {
	return sq.Select(requestFields + ", " + requestRelationFields).
		From("requests r").
		LeftJoin("equipments e ON e.id = r.equipment_id").
		LeftJoin("teams t ON t.id = r.team_id").
		LeftJoin("users au ON au.id = r.assigned_to").
		LeftJoin("users cu ON cu.id = r.created_by").
		PlaceholderFormat(sq.Dollar)
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.RequestWithRelations, uint64, error) {
	builder := r.baseSelect()
	builder = applySearch(builder, filter.Search, []string{"r.subject", "r.description", "e.name"})
	if filter.ScheduledFrom != nil {
		builder = builder.Where(sq.GtOrEq{"r.scheduled_date": *filter.ScheduledFrom})
	}
	if filter.ScheduledTo != nil {
		builder = builder.Where(sq.LtOrEq{"r.scheduled_date": *filter.ScheduledTo})
	}
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("r.created_at DESC")
	}
	builder = applyListParams(builder, filter, requestFilterColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.RequestWithRelations
	for rows.Next() {
		var req entities.RequestWithRelations
		if err := scanRequestWithRelations(rows, &req); err != nil {
			return nil, 0, err
		}
		list = append(list, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM requests`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.RequestWithRelations, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var req entities.RequestWithRelations
	if err := scanRequestWithRelations(r.storage.QueryRow(ctx, query, args...), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) GetRequestsByEquipment(ctx context.Context, equipmentID uint64) ([]entities.Request, error) {
	query := `
		SELECT ` + requestFields + `
		FROM requests r
		WHERE r.equipment_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Request
	for rows.Next() {
		var req entities.Request
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

func (r *RequestRepository) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO, createdBy uint64) (uint64, error) {
	query := `
		INSERT INTO requests
			(type, subject, description, equipment_id, department, team_id,
			 assigned_to, priority, scheduled_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.Type,
		payload.Subject,
		payload.Description,
		payload.EquipmentID,
		payload.Department,
		payload.TeamID,
		payload.AssignedTo,
		payload.Priority,
		parseDatePtr(payload.ScheduledDate),
		createdBy,
	).Scan(&id)
	if err != nil {
		r.logger.Error("CreateRequest: ошибка вставки заявки", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) error {
	builder := sq.Update("requests").PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if payload.Subject != nil {
		builder = builder.Set("subject", *payload.Subject)
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
	}
	if payload.Department != nil {
		builder = builder.Set("department", *payload.Department)
	}
	if payload.TeamID != nil {
		builder = builder.Set("team_id", *payload.TeamID)
	}
	if payload.Priority != nil {
		builder = builder.Set("priority", *payload.Priority)
	}
	if payload.ScheduledDate != nil {
		builder = builder.Set("scheduled_date", parseDatePtr(payload.ScheduledDate))
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

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) AssignRequest(ctx context.Context, id uint64, userID *uint64) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE requests SET assigned_to = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		userID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRequestForUpdate читает заявку с блокировкой строки (FOR UPDATE),
// поэтому вызывается только внутри транзакции.
func (r *RequestRepository) FindRequestForUpdate(ctx context.Context, q Querier, id uint64) (*entities.Request, error) {
	query := `
		SELECT ` + requestFields + `
		FROM requests r
		WHERE r.id = $1
		FOR UPDATE
	`

	var req entities.Request
	if err := scanRequest(q.QueryRow(ctx, query, id), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// ApplyStatusChange записывает уже рассчитанный переход статуса.
// Сам расчёт (допустимость перехода, длительность, дата завершения)
// выполняется заранее, здесь только запись.
func (r *RequestRepository) ApplyStatusChange(ctx context.Context, q Querier, id uint64, change *lifecycle.Change) error {
	result, err := q.Exec(ctx,
		`UPDATE requests
		 SET status = $1, duration = $2, completed_date = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		change.Status, change.Duration, change.CompletedDate, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanRequest(row pgx.Row, req *entities.Request) error {
	return row.Scan(
		&req.ID, &req.Type, &req.Subject, &req.Description, &req.EquipmentID,
		&req.Department, &req.TeamID, &req.AssignedTo, &req.Priority, &req.Status,
		&req.ScheduledDate, &req.Duration, &req.CompletedDate, &req.CreatedBy,
		&req.CreatedAt, &req.UpdatedAt,
	)
}

func scanRequestWithRelations(row pgx.Row, req *entities.RequestWithRelations) error {
	var (
		eqID          *uint64
		eqName        *string
		eqSerial      *string
		eqStatus      *string
		teamID        *uint64
		teamName      *string
		assignedID    *uint64
		assignedName  *string
		assignedEmail *string
		creatorID     *uint64
		creatorName   *string
		creatorEmail  *string
	)

	err := row.Scan(
		&req.ID, &req.Type, &req.Subject, &req.Description, &req.EquipmentID,
		&req.Department, &req.TeamID, &req.AssignedTo, &req.Priority, &req.Status,
		&req.ScheduledDate, &req.Duration, &req.CompletedDate, &req.CreatedBy,
		&req.CreatedAt, &req.UpdatedAt,
		&eqID, &eqName, &eqSerial, &eqStatus,
		&teamID, &teamName,
		&assignedID, &assignedName, &assignedEmail,
		&creatorID, &creatorName, &creatorEmail,
	)
	if err != nil {
		return err
	}

	if eqID != nil {
		req.Equipment = &entities.Equipment{
			ID:           *eqID,
			Name:         *eqName,
			SerialNumber: *eqSerial,
			Status:       *eqStatus,
		}
	}
	if teamID != nil {
		req.Team = &entities.Team{ID: *teamID, Name: *teamName}
	}
	if assignedID != nil {
		req.AssignedUser = &entities.User{ID: *assignedID, Name: *assignedName, Email: *assignedEmail}
	}
	if creatorID != nil {
		req.Creator = &entities.User{ID: *creatorID, Name: *creatorName, Email: *creatorEmail}
	}
	return nil
}
