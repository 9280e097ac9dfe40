package health

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

// Response тело ответа /health
type Response struct {
	OK      bool   `json:"ok"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Handler struct {
	name    string
	version string
}

func NewHandler(name, version string) *Handler {
	return &Handler{name: name, version: version}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{OK: true, Name: h.name, Version: h.version})
}
