package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	engine AvailabilityEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка остатка и вставка выполняются движком доступности под настроенной защитой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: actor=%d, room_type=%d, check_in=%s, check_out=%s",
		req.Actor.ID, req.RoomTypeID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	dates, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем владельца бронирования
	userID, err := resolveOwner(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: actor=%d tried to book for user=%d", req.Actor.ID, *req.UserID)
		return nil, err
	}

	// 3. Допуск бронирования
	booking, err := uc.engine.TryAdmitBooking(ctx, &availability.AdmissionRequest{
		RoomTypeID:   req.RoomTypeID,
		UserID:       userID,
		Dates:        dates,
		Guests:       req.Guests,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return nil, uc.mapEngineError(err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", booking.ID)

	return toResponse(booking), nil
}

func (uc *UseCase) mapEngineError(err error) error {
	switch {
	case errors.Is(err, availability.ErrRoomTypeNotFound):
		return ErrRoomTypeNotFound
	case errors.Is(err, availability.ErrRoomTypeInactive):
		return ErrRoomTypeInactive
	case errors.Is(err, availability.ErrCapacityExhausted):
		return ErrCapacityExhausted
	case errors.Is(err, availability.ErrConcurrentBooking):
		uc.logger.Warn("CreateBooking: concurrent booking conflict: %v", err)
		return ErrConcurrentBooking
	case errors.Is(err, availability.ErrInvalidReference):
		return ErrUserNotFound
	case errors.Is(err, availability.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateBooking: failed to admit booking: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		UserID:       b.UserID,
		RoomTypeID:   b.RoomTypeID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Guests:       b.Guests,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}
