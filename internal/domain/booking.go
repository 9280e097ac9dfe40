package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus разбирает статус из строки запроса
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// IsValid returns true for statuses known to the system
func (s BookingStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a guest's reservation of one unit of a room type
type Booking struct {
	ID           int64
	UserID       int64
	RoomTypeID   int64
	CheckIn      time.Time // UTC midnight
	CheckOut     time.Time // UTC midnight, exclusive
	Guests       int
	ContactName  string
	ContactPhone string
	Status       BookingStatus

	CancelledAt *time.Time
	CreatedAt   time.Time

	// RoomType заполняется только при выборке со связанными данными
	RoomType *RoomType
}

// Range returns the stay as a half-open date range
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// OccupiesCapacity returns true if the booking counts toward room type capacity
func (b *Booking) OccupiesCapacity() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsOwnedBy returns true if the booking belongs to the user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID         *int64         // Бронирования пользователя (опционально)
	RoomTypeID     *int64         // Бронирования типа номера (опционально)
	Status         *BookingStatus // Фильтр по статусу (опционально)
	IncludeRelated bool           // Подгрузить тип номера и отель
}
