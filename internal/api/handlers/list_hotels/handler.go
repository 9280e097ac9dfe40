package list_hotels

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/hotels?city=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	result, err := h.service.List(r.Context(), city)
	if err != nil {
		h.logger.Error("GET /hotels - Failed to list hotels: city=%q, error=%v", city, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels - Hotels listed: city=%q, count=%d", city, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
