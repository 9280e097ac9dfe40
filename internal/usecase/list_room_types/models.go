package list_room_types

import "github.com/m04kA/SMC-HotelBookingService/internal/domain"

// Request фильтры админского списка типов номеров
type Request struct {
	HotelID  *int64
	IsActive *bool
	// Остаток считается только если заданы обе даты
	CheckIn  *string
	CheckOut *string
}

// Response список типов номеров; Dates nil в режиме простого списка
type Response struct {
	Dates     *domain.DateRange
	RoomTypes []RoomTypeAvailability
}

// RoomTypeAvailability тип номера с остатком на даты
type RoomTypeAvailability struct {
	RoomType  *domain.RoomType
	Remaining *int  // nil без дат
	SoldOut   *bool // nil без дат
}
