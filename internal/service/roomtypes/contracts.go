package roomtypes

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomTypeRepository интерфейс репозитория типов номеров
type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	UpdatePrice(ctx context.Context, id int64, price float64) (*domain.RoomType, error)
	UpdateStatus(ctx context.Context, id int64, isActive bool) (*domain.RoomType, error)
	UpdateStock(ctx context.Context, id int64, total int) (*domain.RoomType, error)
}

// RoomTypeGuard выполняет fn под той же защитой, что и допуск бронирований
// этого типа номера (*availability.Engine)
type RoomTypeGuard interface {
	WithRoomTypeGuard(ctx context.Context, roomTypeID int64, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
