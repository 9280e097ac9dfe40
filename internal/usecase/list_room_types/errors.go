package list_room_types

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("list_room_types: invalid date")

	// ErrInvalidDateRange возвращается, когда checkIn не раньше checkOut
	ErrInvalidDateRange = errors.New("list_room_types: checkIn must be before checkOut")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_room_types: internal error")
)
