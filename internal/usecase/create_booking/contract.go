package create_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/availability"
)

// AvailabilityEngine движок допуска бронирований
type AvailabilityEngine interface {
	TryAdmitBooking(ctx context.Context, req *availability.AdmissionRequest) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
