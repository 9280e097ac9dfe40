package hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	List(ctx context.Context, city *string) ([]*domain.HotelSummary, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
