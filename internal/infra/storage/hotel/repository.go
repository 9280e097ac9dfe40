package hotel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const (
	coverURLColumn = "(SELECT hi.url FROM hotel_images hi WHERE hi.hotel_id = h.id " +
		"ORDER BY hi.sort_order ASC, hi.id ASC LIMIT 1) AS cover_url"
	roomTypeCountColumn = "(SELECT COUNT(*) FROM room_types rt WHERE rt.hotel_id = h.id) AS room_type_count"
)

// Repository репозиторий отелей (только чтение)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает отели с обложкой и количеством типов номеров.
// Если city не nil, фильтрует по точному совпадению города
func (r *Repository) List(ctx context.Context, city *string) ([]*domain.HotelSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"h.id",
		"h.name",
		"h.city",
		"h.address",
		"h.description",
		"h.created_at",
		coverURLColumn,
		roomTypeCountColumn,
	).
		From("hotels h").
		OrderBy("h.id ASC")

	if city != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"h.city": *city})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]*domain.HotelSummary, 0)
	for rows.Next() {
		var (
			h           domain.HotelSummary
			description sql.NullString
			createdAt   sql.NullTime
			coverURL    sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Address, &description, &createdAt, &coverURL, &h.RoomTypeCount); err != nil {
			return nil, fmt.Errorf("%w: List - scan hotel: %v", ErrScanRow, err)
		}
		if description.Valid {
			h.Description = &description.String
		}
		if coverURL.Valid {
			h.CoverURL = &coverURL.String
		}
		h.CreatedAt = createdAt.Time
		hotels = append(hotels, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return hotels, nil
}

// GetByID получает отель с изображениями и только активными типами номеров
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "city", "address", "description", "created_at").
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		h           domain.Hotel
		description sql.NullString
		createdAt   sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Name, &h.City, &h.Address, &description, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %v", ErrScanRow, err)
	}
	if description.Valid {
		h.Description = &description.String
	}
	h.CreatedAt = createdAt.Time

	if h.Images, err = r.images(ctx, executor, id); err != nil {
		return nil, err
	}
	if h.RoomTypes, err = r.activeRoomTypes(ctx, executor, id); err != nil {
		return nil, err
	}

	return &h, nil
}

func (r *Repository) images(ctx context.Context, executor DBExecutor, hotelID int64) ([]domain.HotelImage, error) {
	query, args, err := psqlbuilder.Select("id", "hotel_id", "url", "sort_order").
		From("hotel_images").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: images - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: images - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]domain.HotelImage, 0)
	for rows.Next() {
		var img domain.HotelImage
		if err := rows.Scan(&img.ID, &img.HotelID, &img.URL, &img.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: images - scan image: %v", ErrScanRow, err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: images - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

func (r *Repository) activeRoomTypes(ctx context.Context, executor DBExecutor, hotelID int64) ([]*domain.RoomType, error) {
	query, args, err := psqlbuilder.Select("id", "hotel_id", "name", "price", "total", "is_active", "created_at", "updated_at").
		From("room_types").
		Where(squirrel.Eq{"hotel_id": hotelID, "is_active": true}).
		OrderBy("price ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: activeRoomTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: activeRoomTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roomTypes := make([]*domain.RoomType, 0)
	for rows.Next() {
		var (
			rt                   domain.RoomType
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Price, &rt.Total, &rt.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: activeRoomTypes - scan room type: %v", ErrScanRow, err)
		}
		rt.CreatedAt = createdAt.Time
		rt.UpdatedAt = updatedAt.Time
		roomTypes = append(roomTypes, &rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: activeRoomTypes - rows error: %v", ErrScanRow, err)
	}

	return roomTypes, nil
}
