package get_room_type_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа номера"
	msgInvalidStatus     = "некорректный статус бронирования"
	msgRoomTypeNotFound  = "тип номера не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/room-types/{id}/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomTypeID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /admin/room-types/{id}/bookings - Invalid room type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	serviceReq := &models.GetRoomTypeBookingsRequest{
		RoomTypeID: roomTypeID,
		Status:     handlers.QueryString(r, "status"),
	}

	result, err := h.service.GetRoomTypeBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/room-types/{id}/bookings - Invalid status: room_type_id=%d", roomTypeID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrRoomTypeNotFound):
			h.logger.Warn("GET /admin/room-types/{id}/bookings - Room type not found: room_type_id=%d", roomTypeID)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		default:
			h.logger.Error("GET /admin/room-types/{id}/bookings - Failed to get bookings: room_type_id=%d, error=%v",
				roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/room-types/{id}/bookings - Bookings retrieved: room_type_id=%d, count=%d",
		roomTypeID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
