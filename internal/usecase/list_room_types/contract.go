package list_room_types

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomTypeRepository интерфейс репозитория типов номеров
type RoomTypeRepository interface {
	List(ctx context.Context, filter domain.RoomTypesFilter) ([]*domain.RoomType, error)
}

// CapacityEngine подсчет остатка номеров
type CapacityEngine interface {
	RemainingCapacity(ctx context.Context, rt *domain.RoomType, dates domain.DateRange) (domain.Capacity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
