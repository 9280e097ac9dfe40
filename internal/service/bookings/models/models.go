package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomTypeModels "github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetRoomTypeBookingsRequest запрос на получение бронирований типа номера (админ)
type GetRoomTypeBookingsRequest struct {
	RoomTypeID int64   `json:"roomTypeId"`
	Status     *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64                            `json:"id"`
	UserID       int64                            `json:"userId"`
	RoomTypeID   int64                            `json:"roomTypeId"`
	CheckIn      string                           `json:"checkIn"`  // "2025-09-10"
	CheckOut     string                           `json:"checkOut"` // "2025-09-12"
	Nights       int                              `json:"nights"`
	Guests       int                              `json:"guests"`
	ContactName  string                           `json:"contactName"`
	ContactPhone string                           `json:"contactPhone"`
	Status       string                           `json:"status"`
	CancelledAt  *string                          `json:"cancelledAt,omitempty"`
	CreatedAt    string                           `json:"createdAt"`
	RoomType     *roomTypeModels.RoomTypeResponse `json:"roomType,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, err := domain.ParseBookingStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		RoomTypeID:   b.RoomTypeID,
		CheckIn:      b.CheckIn.Format(domain.DateFormat),
		CheckOut:     b.CheckOut.Format(domain.DateFormat),
		Nights:       b.Range().Nights(),
		Guests:       b.Guests,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		RoomType:     roomTypeModels.FromDomainRoomType(b.RoomType),
	}
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}
	return resp
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}
