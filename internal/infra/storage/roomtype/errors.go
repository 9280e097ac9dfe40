package roomtype

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("roomtype.repository: room type not found")

	// ErrHotelNotFound возвращается, когда отель для нового типа номера не существует (FK)
	ErrHotelNotFound = errors.New("roomtype.repository: hotel not found")

	// ErrConstraintViolation возвращается при нарушении CHECK ограничения (price, total)
	ErrConstraintViolation = errors.New("roomtype.repository: constraint violation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("roomtype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("roomtype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("roomtype.repository: failed to scan row")
)
