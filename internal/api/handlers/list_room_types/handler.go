package list_room_types

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	listRoomTypes "github.com/m04kA/SMC-HotelBookingService/internal/usecase/list_room_types"
)

const (
	msgInvalidParams    = "некорректные параметры запроса"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата заезда должна быть раньше даты выезда"
)

type Handler struct {
	useCase ListRoomTypesUseCase
	logger  Logger
}

func NewHandler(useCase ListRoomTypesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/admin/room-types
// Query params: hotelId, isActive, checkIn, checkOut (все опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/room-types - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listRoomTypes.ErrInvalidDate):
			h.logger.Warn("GET /admin/room-types - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, listRoomTypes.ErrInvalidDateRange):
			h.logger.Warn("GET /admin/room-types - Invalid date range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /admin/room-types - Failed to list room types: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/room-types - Room types listed: count=%d, preview=%t",
		len(result.RoomTypes), result.Dates != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
