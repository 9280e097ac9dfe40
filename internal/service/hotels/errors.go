package hotels

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotels: hotel not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hotels: internal error")
)
