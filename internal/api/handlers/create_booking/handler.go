package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingField       = "не заполнено обязательное поле"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата заезда должна быть раньше даты выезда"
	msgForbidden          = "нельзя бронировать от имени другого пользователя"
	msgRoomTypeNotFound   = "тип номера не найден"
	msgRoomTypeInactive   = "тип номера недоступен для бронирования"
	msgNoRoomsLeft        = "на выбранные даты свободных номеров нет"
	msgConcurrentBooking  = "номер одновременно бронируют, повторите попытку"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		var fieldErr *createBooking.FieldError

		switch {
		case errors.As(err, &fieldErr):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%d, field=%s, error=%v", actor.ID, fieldErr.Field, err)
			handlers.RespondBadRequest(w, fmt.Sprintf("%s: %s", fieldMessage(fieldErr), fieldErr.Field))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrForbidden):
			h.logger.Warn("POST /bookings - Booking on behalf of another user: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrRoomTypeNotFound):
			h.logger.Warn("POST /bookings - Room type not found: room_type_id=%d", req.RoomTypeID)
			handlers.RespondBadRequest(w, msgRoomTypeNotFound)

		case errors.Is(err, createBooking.ErrRoomTypeInactive):
			h.logger.Warn("POST /bookings - Room type inactive: room_type_id=%d", req.RoomTypeID)
			handlers.RespondBadRequest(w, msgRoomTypeInactive)

		case errors.Is(err, createBooking.ErrCapacityExhausted):
			h.logger.Warn("POST /bookings - No rooms left: room_type_id=%d, check_in=%s, check_out=%s",
				req.RoomTypeID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgNoRoomsLeft)

		case errors.Is(err, createBooking.ErrConcurrentBooking):
			h.logger.Warn("POST /bookings - Concurrent booking conflict: room_type_id=%d", req.RoomTypeID)
			handlers.RespondConflict(w, msgConcurrentBooking)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", actor.ID)
			handlers.RespondBadRequest(w, msgUserNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_type_id=%d, error=%v",
				actor.ID, req.RoomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, room_type_id=%d",
		result.ID, result.UserID, result.RoomTypeID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func fieldMessage(fieldErr *createBooking.FieldError) string {
	switch {
	case errors.Is(fieldErr, createBooking.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(fieldErr, createBooking.ErrInvalidDateRange):
		return msgInvalidDateRange
	default:
		return msgMissingField
	}
}
