package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrInvalidReference возвращается, когда пользователь или тип номера не существуют (FK)
	ErrInvalidReference = errors.New("booking.repository: referenced user or room type does not exist")

	// ErrConstraintViolation возвращается при нарушении CHECK ограничения
	ErrConstraintViolation = errors.New("booking.repository: constraint violation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrCannotCancel возвращается, когда бронирование уже не в статусе CONFIRMED
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")
)
