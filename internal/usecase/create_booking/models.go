package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor        domain.Identity // Пользователь из JWT
	UserID       *int64          // ID владельца бронирования (опционально, по умолчанию Actor.ID)
	RoomTypeID   int64           // ID типа номера
	CheckIn      string          // Дата заезда "2025-09-10"
	CheckOut     string          // Дата выезда "2025-09-12" (не включается)
	Guests       int             // Количество гостей, меньше 1 -> 1
	ContactName  string          // Контактное имя
	ContactPhone string          // Контактный телефон
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	UserID       int64
	RoomTypeID   int64
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	ContactName  string
	ContactPhone string
	Status       string
	CreatedAt    time.Time
}
