package booking

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

var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.room_type_id",
	"b.check_in",
	"b.check_out",
	"b.guests",
	"b.contact_name",
	"b.contact_phone",
	"b.status",
	"b.cancelled_at",
	"b.created_at",
}

var relatedColumns = []string{
	"rt.id",
	"rt.hotel_id",
	"rt.name",
	"rt.price",
	"rt.total",
	"rt.is_active",
	"rt.created_at",
	"rt.updated_at",
	"h.id",
	"h.name",
	"h.city",
	"h.address",
	"h.description",
	"h.created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана транзакция, вставка выполняется в ней: так движок
// доступности держит подсчет пересечений и вставку под одной защитой
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Даты передаем строками YYYY-MM-DD, чтобы часовой пояс сессии не сдвинул день
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"room_type_id",
			"check_in",
			"check_out",
			"guests",
			"contact_name",
			"contact_phone",
			"status",
		).
		Values(
			booking.UserID,
			booking.RoomTypeID,
			booking.CheckIn.Format(domain.DateFormat),
			booking.CheckOut.Format(domain.DateFormat),
			booking.Guests,
			booking.ContactName,
			booking.ContactPhone,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		return nil, classifyWriteError("Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с типом номера и отелем
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := withRelated(psqlbuilder.Select(bookingColumns...).
		Columns(relatedColumns...).
		From("bookings b")).
		Where(squirrel.Eq{"b.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, новые сверху.
//
// Примеры:
//
//	// Мои бронирования с типом номера и отелем
//	filter := domain.BookingsFilter{UserID: &userID, IncludeRelated: true}
//
//	// Отмененные бронирования типа номера
//	status := domain.StatusCancelled
//	filter := domain.BookingsFilter{RoomTypeID: &roomTypeID, Status: &status}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings b")
	if filter.IncludeRelated {
		selectBuilder = withRelated(selectBuilder.Columns(relatedColumns...))
	}

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.user_id": *filter.UserID})
	}
	if filter.RoomTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.room_type_id": *filter.RoomTypeID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	query, args, err := selectBuilder.OrderBy("b.created_at DESC", "b.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows, filter.IncludeRelated)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// CountOverlapping считает CONFIRMED бронирования типа номера, которые делят
// хотя бы одну ночь с диапазоном. Касание (выезд в день заезда) пересечением не считается
func (r *Repository) CountOverlapping(ctx context.Context, roomTypeID int64, dates domain.DateRange) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		Where(squirrel.Eq{"status": domain.OccupyingStatuses}).
		Where(overlapCondition(dates)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, classifyWriteError("CountOverlapping - execute query", err)
	}

	return count, nil
}

// Cancel переводит CONFIRMED бронирование в CANCELLED.
// Возвращает ErrCannotCancel, если бронирование уже не CONFIRMED или не существует
func (r *Repository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Suffix("RETURNING " + unqualified(bookingColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCannotCancel
	}
	if err != nil {
		return nil, classifyWriteError("Cancel - execute update", err)
	}

	return booking, nil
}

// overlapCondition NOT (check_out <= in OR check_in >= out)
func overlapCondition(dates domain.DateRange) squirrel.Sqlizer {
	return squirrel.Expr("NOT (check_out <= ? OR check_in >= ?)",
		dates.CheckIn.Format(domain.DateFormat),
		dates.CheckOut.Format(domain.DateFormat),
	)
}

func withRelated(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	return b.
		Join("room_types rt ON rt.id = b.room_type_id").
		Join("hotels h ON h.id = rt.hotel_id")
}

// classifyWriteError сохраняет в цепочке ошибок то, что важно вызывающему коду:
// конфликт сериализации и нарушение ссылок
func classifyWriteError(op string, err error) error {
	switch {
	case pgerrors.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", pgerrors.ErrSerializationFailure, op, err)
	case pgerrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrInvalidReference, op, err)
	case pgerrors.IsCheckViolation(err):
		return fmt.Errorf("%w: %s: %s", ErrConstraintViolation, op, pgerrors.Constraint(err))
	default:
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}
}
