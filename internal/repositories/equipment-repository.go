package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
)

const equipmentFields = `e.id, e.name, e.serial_number, e.category, e.department,
	e.location, e.assigned_to, e.team_id, e.purchase_date, e.warranty_expiry,
	e.status, e.created_at, e.updated_at`

var equipmentFilterColumns = map[string]string{
	"status":     "e.status",
	"category":   "e.category",
	"department": "e.department",
	"team_id":    "e.team_id",
	"name":       "e.name",
	"created_at": "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
	DeleteEquipment(ctx context.Context, id uint64) error
	UpdateEquipmentStatus(ctx context.Context, q Querier, id uint64, status string) error
}

type EquipmentRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewEquipmentRepository(storage Querier, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	builder := sq.Select(equipmentFields + ", t.id, t.name").
		From("equipments e").
		LeftJoin("teams t ON t.id = e.team_id").
		PlaceholderFormat(sq.Dollar)
	builder = applySearch(builder, filter.Search, []string{"e.name", "e.serial_number", "e.category"})
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("e.created_at DESC")
	}
	builder = applyListParams(builder, filter, equipmentFilterColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		var teamID *uint64
		var teamName *string
		if err := rows.Scan(
			&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.Department,
			&e.Location, &e.AssignedTo, &e.TeamID, &e.PurchaseDate, &e.WarrantyDate,
			&e.Status, &e.CreatedAt, &e.UpdatedAt,
			&teamID, &teamName,
		); err != nil {
			return nil, 0, err
		}
		if teamID != nil {
			e.Team = &entities.Team{ID: *teamID, Name: *teamName}
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM equipments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := `
		SELECT ` + equipmentFields + `, t.id, t.name
		FROM equipments e
			LEFT JOIN teams t ON t.id = e.team_id
		WHERE e.id = $1
	`

	var e entities.Equipment
	var teamID *uint64
	var teamName *string
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.Department,
		&e.Location, &e.AssignedTo, &e.TeamID, &e.PurchaseDate, &e.WarrantyDate,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
		&teamID, &teamName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if teamID != nil {
		e.Team = &entities.Team{ID: *teamID, Name: *teamName}
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	query := `
		INSERT INTO equipments
			(name, serial_number, category, department, location, assigned_to,
			 team_id, purchase_date, warranty_expiry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.Name,
		payload.SerialNumber,
		payload.Category,
		payload.Department,
		payload.Location,
		payload.AssignedTo,
		payload.TeamID,
		parseDatePtr(payload.PurchaseDate),
		parseDatePtr(payload.WarrantyDate),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, "equipments_serial_number_key") {
			return 0, apperrors.ErrDuplicateSerialNumber
		}
		r.logger.Error("CreateEquipment: ошибка вставки оборудования", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	builder := sq.Update("equipments").PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.SerialNumber != nil {
		builder = builder.Set("serial_number", *payload.SerialNumber)
	}
	if payload.Category != nil {
		builder = builder.Set("category", *payload.Category)
	}
	if payload.Department != nil {
		builder = builder.Set("department", *payload.Department)
	}
	if payload.Location != nil {
		builder = builder.Set("location", *payload.Location)
	}
	if payload.AssignedTo != nil {
		builder = builder.Set("assigned_to", *payload.AssignedTo)
	}
	if payload.TeamID != nil {
		builder = builder.Set("team_id", *payload.TeamID)
	}
	if payload.PurchaseDate != nil {
		builder = builder.Set("purchase_date", parseDatePtr(payload.PurchaseDate))
	}
	if payload.WarrantyDate != nil {
		builder = builder.Set("warranty_expiry", parseDatePtr(payload.WarrantyDate))
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, "equipments_serial_number_key") {
			return apperrors.ErrDuplicateSerialNumber
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEquipmentStatus выполняется через переданный Querier, чтобы смена
// статуса оборудования могла идти в одной транзакции со списанием заявки.
func (r *EquipmentRepository) UpdateEquipmentStatus(ctx context.Context, q Querier, id uint64, status string) error {
	result, err := q.Exec(ctx,
		`UPDATE equipments SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// parseDatePtr переводит строку вида 2006-01-02 в *time.Time.
// Формат уже проверен валидатором DTO.
func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
