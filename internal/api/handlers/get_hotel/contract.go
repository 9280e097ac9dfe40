package get_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels/models"
)

type HotelService interface {
	GetByID(ctx context.Context, id int64) (*models.HotelDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
