package roomtype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const returningColumns = "RETURNING id, hotel_id, name, price, total, is_active, created_at, updated_at"

// Repository репозиторий типов номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает тип номера
func (r *Repository) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_types").
		Columns("hotel_id", "name", "price", "total", "is_active").
		Values(rt.HotelID, rt.Name, rt.Price, rt.Total, rt.IsActive).
		Suffix(returningColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created, err := scanRoomType(executor.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		return nil, classifyWriteError("Create - execute insert", err)
	}

	return created, nil
}

// GetByID получает тип номера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"hotel_id",
		"name",
		"price",
		"total",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rt, err := scanRoomType(executor.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, classifyWriteError("GetByID - scan room type", err)
	}

	return rt, nil
}

// List получает типы номеров по фильтру, недавно измененные сверху
func (r *Repository) List(ctx context.Context, filter domain.RoomTypesFilter) ([]*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"rt.id",
		"rt.hotel_id",
		"rt.name",
		"rt.price",
		"rt.total",
		"rt.is_active",
		"rt.created_at",
		"rt.updated_at",
	).
		From("room_types rt")

	if filter.IncludeHotel {
		selectBuilder = selectBuilder.
			Columns("h.id", "h.name", "h.city", "h.address", "h.description", "h.created_at").
			Join("hotels h ON h.id = rt.hotel_id")
	}

	if filter.HotelID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"rt.hotel_id": *filter.HotelID})
	}
	if filter.IsActive != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"rt.is_active": *filter.IsActive})
	}

	query, args, err := selectBuilder.OrderBy("rt.updated_at DESC", "rt.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roomTypes := make([]*domain.RoomType, 0)
	for rows.Next() {
		rt, err := scanRoomType(rows, filter.IncludeHotel)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan room type: %v", ErrScanRow, err)
		}
		roomTypes = append(roomTypes, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return roomTypes, nil
}

// UpdatePrice обновляет цену
func (r *Repository) UpdatePrice(ctx context.Context, id int64, price float64) (*domain.RoomType, error) {
	return r.update(ctx, "UpdatePrice", id, "price", price)
}

// UpdateStatus включает или выключает тип номера
func (r *Repository) UpdateStatus(ctx context.Context, id int64, isActive bool) (*domain.RoomType, error) {
	return r.update(ctx, "UpdateStatus", id, "is_active", isActive)
}

// UpdateStock обновляет количество номеров. Действующие бронирования не трогаются,
// поэтому total может стать меньше числа пересекающихся бронирований
func (r *Repository) UpdateStock(ctx context.Context, id int64, total int) (*domain.RoomType, error) {
	return r.update(ctx, "UpdateStock", id, "total", total)
}

func (r *Repository) update(ctx context.Context, op string, id int64, column string, value interface{}) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_types").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	rt, err := scanRoomType(executor.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, classifyWriteError(op+" - execute update", err)
	}

	return rt, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoomType(row rowScanner, withHotel bool) (*domain.RoomType, error) {
	var (
		rt                   domain.RoomType
		createdAt, updatedAt sql.NullTime
	)

	dest := []interface{}{
		&rt.ID,
		&rt.HotelID,
		&rt.Name,
		&rt.Price,
		&rt.Total,
		&rt.IsActive,
		&createdAt,
		&updatedAt,
	}

	var (
		hotel          domain.Hotel
		description    sql.NullString
		hotelCreatedAt sql.NullTime
	)
	if withHotel {
		dest = append(dest, &hotel.ID, &hotel.Name, &hotel.City, &hotel.Address, &description, &hotelCreatedAt)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	rt.CreatedAt = createdAt.Time
	rt.UpdatedAt = updatedAt.Time

	if withHotel {
		if description.Valid {
			hotel.Description = &description.String
		}
		hotel.CreatedAt = hotelCreatedAt.Time
		rt.Hotel = &hotel
	}

	return &rt, nil
}

func classifyWriteError(op string, err error) error {
	switch {
	case pgerrors.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", pgerrors.ErrSerializationFailure, op, err)
	case pgerrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrHotelNotFound, op, err)
	case pgerrors.IsCheckViolation(err):
		return fmt.Errorf("%w: %s: %s", ErrConstraintViolation, op, pgerrors.Constraint(err))
	default:
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}
}
