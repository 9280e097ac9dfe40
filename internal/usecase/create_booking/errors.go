package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrInvalidDateRange возвращается, когда checkIn не раньше checkOut
	ErrInvalidDateRange = errors.New("create_booking: checkIn must be before checkOut")

	// ErrForbidden возвращается при попытке забронировать от имени другого пользователя
	ErrForbidden = errors.New("create_booking: cannot book on behalf of another user")

	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("create_booking: room type not found")

	// ErrRoomTypeInactive возвращается, когда тип номера выключен
	ErrRoomTypeInactive = errors.New("create_booking: room type is inactive")

	// ErrCapacityExhausted возвращается, когда на даты не осталось номеров
	ErrCapacityExhausted = errors.New("create_booking: no rooms left for the requested dates")

	// ErrConcurrentBooking возвращается при конфликте конкурентных бронирований
	ErrConcurrentBooking = errors.New("create_booking: concurrent booking conflict")

	// ErrUserNotFound возвращается, когда пользователь бронирования не существует
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldError ошибка валидации конкретного поля запроса
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
