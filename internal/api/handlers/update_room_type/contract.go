package update_room_type

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
)

type RoomTypeService interface {
	UpdatePrice(ctx context.Context, id int64, price float64) (*models.RoomTypeResponse, error)
	UpdateStatus(ctx context.Context, id int64, isActive bool) (*models.RoomTypeResponse, error)
	UpdateStock(ctx context.Context, id int64, total int) (*models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
