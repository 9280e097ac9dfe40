package update_room_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/roomtypes/models"
)

const (
	msgInvalidRoomTypeID  = "некорректный ID типа номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPrice       = "не указана цена"
	msgMissingIsActive    = "не указан статус isActive"
	msgMissingTotal       = "не указано количество номеров"
	msgInvalidPrice       = "цена должна быть положительным числом"
	msgInvalidStock       = "количество номеров должно быть неотрицательным целым числом"
	msgRoomTypeNotFound   = "тип номера не найден"
	msgConcurrentUpdate   = "тип номера изменяется параллельным бронированием, повторите запрос"
)

// Handler обновляет цену, статус и количество номеров типа номера
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

// HandlePrice PATCH /api/admin/room-types/{id}/price
func (h *Handler) HandlePrice(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /admin/room-types/{id}/price"

	id, ok := h.roomTypeID(w, r, route)
	if !ok {
		return
	}

	var req UpdatePriceRequest
	if !h.decode(w, r, route, &req) {
		return
	}
	if req.Price == nil {
		handlers.RespondBadRequest(w, msgMissingPrice)
		return
	}

	result, err := h.service.UpdatePrice(r.Context(), id, *req.Price)
	h.respond(w, route, id, result, err)
}

// HandleStatus PATCH /api/admin/room-types/{id}/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /admin/room-types/{id}/status"

	id, ok := h.roomTypeID(w, r, route)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !h.decode(w, r, route, &req) {
		return
	}
	if req.IsActive == nil {
		handlers.RespondBadRequest(w, msgMissingIsActive)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, *req.IsActive)
	h.respond(w, route, id, result, err)
}

// HandleStock PATCH /api/admin/room-types/{id}/stock
func (h *Handler) HandleStock(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /admin/room-types/{id}/stock"

	id, ok := h.roomTypeID(w, r, route)
	if !ok {
		return
	}

	var req UpdateStockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		// 2.5 не разбирается в int
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidStock)
		return
	}
	if req.Total == nil {
		handlers.RespondBadRequest(w, msgMissingTotal)
		return
	}

	result, err := h.service.UpdateStock(r.Context(), id, *req.Total)
	h.respond(w, route, id, result, err)
}

func (h *Handler) roomTypeID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid room type ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, v interface{}) bool {
	if err := handlers.DecodeJSON(r, v); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, route string, id int64, result *models.RoomTypeResponse, err error) {
	if err != nil {
		switch {
		case errors.Is(err, roomtypes.ErrRoomTypeNotFound):
			h.logger.Warn("%s - Room type not found: id=%d", route, id)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, roomtypes.ErrInvalidPrice):
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, roomtypes.ErrInvalidStock):
			handlers.RespondBadRequest(w, msgInvalidStock)

		case errors.Is(err, roomtypes.ErrConcurrentUpdate):
			h.logger.Warn("%s - Concurrent update: id=%d", route, id)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("%s - Failed to update room type: id=%d, error=%v", route, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Room type updated: id=%d", route, id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
