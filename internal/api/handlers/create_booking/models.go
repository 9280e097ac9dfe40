package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID       *int64 `json:"userId,omitempty"`
	RoomTypeID   int64  `json:"roomTypeId"`
	CheckIn      string `json:"checkIn"`  // "2025-09-10"
	CheckOut     string `json:"checkOut"` // "2025-09-12"
	Guests       int    `json:"guests"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	RoomTypeID   int64  `json:"roomTypeId"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Guests       int    `json:"guests"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Identity) *createBooking.Request {
	return &createBooking.Request{
		Actor:        actor,
		UserID:       r.UserID,
		RoomTypeID:   r.RoomTypeID,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Guests:       r.Guests,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		RoomTypeID:   resp.RoomTypeID,
		CheckIn:      resp.CheckIn.Format(domain.DateFormat),
		CheckOut:     resp.CheckOut.Format(domain.DateFormat),
		Guests:       resp.Guests,
		ContactName:  resp.ContactName,
		ContactPhone: resp.ContactPhone,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
