package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	createRoomTypeHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_room_type"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getHotelHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_hotel"
	getRoomTypeBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_room_type_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/health"
	listHotelsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_hotels"
	listRoomTypesHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_room_types"
	updateRoomTypeHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_room_type"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
)

// Handlers набор обработчиков всех маршрутов
type Handlers struct {
	Health              *healthHandler.Handler
	ListHotels          *listHotelsHandler.Handler
	GetHotel            *getHotelHandler.Handler
	CreateBooking       *createBookingHandler.Handler
	GetUserBookings     *getUserBookingsHandler.Handler
	GetBooking          *getBookingHandler.Handler
	CancelBooking       *cancelBookingHandler.Handler
	ListRoomTypes       *listRoomTypesHandler.Handler
	CreateRoomType      *createRoomTypeHandler.Handler
	UpdateRoomType      *updateRoomTypeHandler.Handler
	GetRoomTypeBookings *getRoomTypeBookingsHandler.Handler
}

// RouterOptions зависимости роутера. Metrics nil, если метрики выключены
type RouterOptions struct {
	Auth        *middleware.Authenticator
	Logger      middleware.Logger
	Metrics     *metrics.Metrics
	MetricsPath string
	Gatherer    prometheus.Gatherer
}

// NewRouter собирает маршруты: публичные, пользовательские (JWT) и админские (JWT + ADMIN)
func NewRouter(h *Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(opts.Logger))
	r.Use(middleware.TraceContext)
	r.Use(middleware.AccessLog(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))

		gatherer := opts.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", h.Health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/hotels", h.ListHotels.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId:[0-9]+}", h.GetHotel.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <JWT>)
	// ============================================================

	protected := api.PathPrefix("/bookings").Subrouter()
	protected.Use(opts.Auth.Middleware)

	protected.HandleFunc("", h.CreateBooking.Handle).Methods(http.MethodPost)
	// /me регистрируется до /{bookingId}
	protected.HandleFunc("/me", h.GetUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{bookingId:[0-9]+}", h.GetBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/{bookingId:[0-9]+}/cancel", h.CancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (JWT + роль ADMIN)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(opts.Auth.Middleware, middleware.RequireAdmin)

	admin.HandleFunc("/room-types", h.ListRoomTypes.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/room-types", h.CreateRoomType.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/room-types/{id:[0-9]+}/price", h.UpdateRoomType.HandlePrice).Methods(http.MethodPatch)
	admin.HandleFunc("/room-types/{id:[0-9]+}/status", h.UpdateRoomType.HandleStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/room-types/{id:[0-9]+}/stock", h.UpdateRoomType.HandleStock).Methods(http.MethodPatch)
	admin.HandleFunc("/room-types/{id:[0-9]+}/bookings", h.GetRoomTypeBookings.Handle).Methods(http.MethodGet)

	return r
}
