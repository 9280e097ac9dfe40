package availability

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Guard режим защиты последовательности "посчитать пересечения, затем вставить"
type Guard string

const (
	// GuardNone без защиты: два конкурентных запроса могут оба пройти проверку
	GuardNone Guard = "none"
	// GuardAdvisoryLock транзакция с pg_advisory_xact_lock(roomTypeID)
	GuardAdvisoryLock Guard = "advisory_lock"
	// GuardSerializable транзакция SERIALIZABLE, конфликт возвращается как ErrConcurrentBooking
	GuardSerializable Guard = "serializable"
)

// ParseGuard разбирает режим из конфигурации
func ParseGuard(s string) (Guard, error) {
	switch g := Guard(s); g {
	case GuardNone, GuardAdvisoryLock, GuardSerializable:
		return g, nil
	default:
		return "", fmt.Errorf("%w: unknown admission guard %q", ErrInvalidInput, s)
	}
}

// Исходы допуска для метрик
const (
	OutcomeAdmitted          = "admitted"
	OutcomeCapacityExhausted = "capacity_exhausted"
	OutcomeRoomTypeRejected  = "room_type_rejected"
	OutcomeConflict          = "conflict"
	OutcomeInvalid           = "invalid"
	OutcomeError             = "error"
)

// AdmissionRequest запрос на создание бронирования
type AdmissionRequest struct {
	RoomTypeID   int64
	UserID       int64
	Dates        domain.DateRange
	Guests       int
	ContactName  string
	ContactPhone string
}
