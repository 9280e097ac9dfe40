package create_room_type

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
)

type RoomTypeService interface {
	Create(ctx context.Context, req *models.CreateRoomTypeRequest) (*models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
