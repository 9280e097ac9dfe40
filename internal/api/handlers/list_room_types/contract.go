package list_room_types

import (
	"context"

	listRoomTypes "github.com/m04kA/SMC-HotelBookingService/internal/usecase/list_room_types"
)

type ListRoomTypesUseCase interface {
	Execute(ctx context.Context, req *listRoomTypes.Request) (*listRoomTypes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
