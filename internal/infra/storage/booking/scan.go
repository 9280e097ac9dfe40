package booking

import (
	"database/sql"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner, withRelated bool) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		cancelledAt sql.NullTime
		createdAt   sql.NullTime
	)

	dest := []interface{}{
		&booking.ID,
		&booking.UserID,
		&booking.RoomTypeID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Guests,
		&booking.ContactName,
		&booking.ContactPhone,
		&booking.Status,
		&cancelledAt,
		&createdAt,
	}

	var (
		roomType       domain.RoomType
		hotel          domain.Hotel
		rtCreatedAt    sql.NullTime
		rtUpdatedAt    sql.NullTime
		hotelCreatedAt sql.NullTime
		description    sql.NullString
	)

	if withRelated {
		dest = append(dest,
			&roomType.ID,
			&roomType.HotelID,
			&roomType.Name,
			&roomType.Price,
			&roomType.Total,
			&roomType.IsActive,
			&rtCreatedAt,
			&rtUpdatedAt,
			&hotel.ID,
			&hotel.Name,
			&hotel.City,
			&hotel.Address,
			&description,
			&hotelCreatedAt,
		)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	booking.CheckIn = domain.NormalizeDate(booking.CheckIn)
	booking.CheckOut = domain.NormalizeDate(booking.CheckOut)
	booking.CreatedAt = createdAt.Time
	if cancelledAt.Valid {
		t := cancelledAt.Time
		booking.CancelledAt = &t
	}

	if withRelated {
		roomType.CreatedAt = rtCreatedAt.Time
		roomType.UpdatedAt = rtUpdatedAt.Time
		hotel.CreatedAt = hotelCreatedAt.Time
		if description.Valid {
			hotel.Description = &description.String
		}
		roomType.Hotel = &hotel
		booking.RoomType = &roomType
	}

	return &booking, nil
}

// unqualified убирает алиас таблицы ("b.id" -> "id") для RETURNING
func unqualified(columns []string) string {
	out := make([]string, len(columns))
	for i, c := range columns {
		if idx := strings.IndexByte(c, '.'); idx >= 0 {
			c = c[idx+1:]
		}
		out[i] = c
	}
	return strings.Join(out, ", ")
}
