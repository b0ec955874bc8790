package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/create_booking"
	getAdminBookingsHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/get_admin_bookings"
	getBookingHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/get_dashboard"
	getRoomCalendarHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/get_room_calendar"
	getUserBookingsHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/get_user_bookings"
	listPetsHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/list_pets"
	listRoomsHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/list_rooms"
	registerPetHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/register_pet"
	updateBookingStatusHandler "github.com/m04kA/SMC-PetHotelService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-PetHotelService/internal/api/middleware"
	"github.com/m04kA/SMC-PetHotelService/pkg/metrics"
)

// NewRouter настраивает маршруты API.
// Метрики HTTP и /metrics подключаются, только если m не nil.
func NewRouter(a *App, m *metrics.Metrics, metricsPath string, log Logger) *mux.Router {
	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(a.Rooms, log)
	getRoomCalendar := getRoomCalendarHandler.NewHandler(a.RoomCalendar, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(a.CheckAvailability, log)
	registerPet := registerPetHandler.NewHandler(a.Pets, log)
	listPets := listPetsHandler.NewHandler(a.Pets, log)
	createBooking := createBookingHandler.NewHandler(a.CreateBooking, log)
	getBooking := getBookingHandler.NewHandler(a.Bookings, log)
	cancelBooking := cancelBookingHandler.NewHandler(a.Bookings, log)
	getUserBookings := getUserBookingsHandler.NewHandler(a.Bookings, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(a.Bookings, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(a.Bookings, log)
	getDashboard := getDashboardHandler.NewHandler(a.Dashboard, a.Access, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if m != nil {
		r.Use(middleware.MetricsMiddleware(m))
		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(metricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.Identify)

	public.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	public.HandleFunc("/rooms/{roomId}/calendar", getRoomCalendar.Handle).Methods(http.MethodGet)
	public.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Питомцы ---
	protected.HandleFunc("/pets", registerPet.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/pets", listPets.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	return r
}
