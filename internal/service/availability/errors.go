package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе на допуск
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrRoomTypeNotFound возвращается, когда тип номера не существует
	ErrRoomTypeNotFound = errors.New("availability: room type not found")

	// ErrRoomTypeInactive возвращается, когда тип номера выключен
	ErrRoomTypeInactive = errors.New("availability: room type is inactive")

	// ErrCapacityExhausted возвращается, когда все номера на даты заняты
	ErrCapacityExhausted = errors.New("availability: no rooms left for the requested dates")

	// ErrConcurrentBooking возвращается, когда конкурентная транзакция помешала допуску (serializable)
	ErrConcurrentBooking = errors.New("availability: concurrent booking conflict")

	// ErrInvalidReference возвращается, когда пользователь бронирования не существует
	ErrInvalidReference = errors.New("availability: referenced user does not exist")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("availability: internal error")
)
