package availability

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountOverlapping(ctx context.Context, roomTypeID int64, dates domain.DateRange) (int, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomTypeRepository интерфейс репозитория типов номеров
type RoomTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoWithAdvisoryLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error
}

// AdmissionObserver получает исход каждой попытки допуска (метрики)
type AdmissionObserver interface {
	ObserveAdmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
