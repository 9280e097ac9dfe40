package create_room_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не заполнены обязательные поля: hotelId, name"
	msgInvalidPrice       = "цена должна быть положительным числом"
	msgInvalidStock       = "количество номеров должно быть неотрицательным целым числом"
	msgHotelNotFound      = "отель не найден"
)

type Handler struct {
	service RoomTypeService
	logger  Logger
}

func NewHandler(service RoomTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/room-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	roomType, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, roomtypes.ErrInvalidPrice):
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, roomtypes.ErrInvalidStock):
			handlers.RespondBadRequest(w, msgInvalidStock)

		case errors.Is(err, roomtypes.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, roomtypes.ErrHotelNotFound):
			h.logger.Warn("POST /admin/room-types - Hotel not found: hotel_id=%d", req.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("POST /admin/room-types - Failed to create room type: hotel_id=%d, error=%v", req.HotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/room-types - Room type created: id=%d, hotel_id=%d", roomType.ID, roomType.HotelID)
	handlers.RespondJSON(w, http.StatusCreated, roomType)
}
