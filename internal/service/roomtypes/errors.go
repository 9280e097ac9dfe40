package roomtypes

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("roomtypes: room type not found")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("roomtypes: hotel not found")

	// ErrInvalidPrice возвращается, когда цена не положительное конечное число
	ErrInvalidPrice = errors.New("roomtypes: price must be a positive number")

	// ErrInvalidStock возвращается, когда количество номеров отрицательное
	ErrInvalidStock = errors.New("roomtypes: total must be a non-negative integer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("roomtypes: invalid input data")

	// ErrConcurrentUpdate возвращается, когда изменение конфликтует с параллельным допуском
	// бронирования (режим serializable), запрос можно повторить
	ErrConcurrentUpdate = errors.New("roomtypes: concurrent update, retry")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("roomtypes: internal error")
)
