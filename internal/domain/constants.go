package domain

// Default values
const (
	DefaultGuests = 1
)

// Business validation constants
const (
	MinGuests             = 1
	MaxContactNameLength  = 200
	MaxContactPhoneLength = 50
	MaxRoomTypeNameLength = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы бронирований, которые занимают номер
// Используется при подсчете пересечений
var OccupyingStatuses = []BookingStatus{
	StatusConfirmed,
}
