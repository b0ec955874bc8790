package app

import (
	"time"

	"github.com/m04kA/SMC-PetHotelService/internal/config"
	"github.com/m04kA/SMC-PetHotelService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-PetHotelService/internal/service/access"
	bookingsService "github.com/m04kA/SMC-PetHotelService/internal/service/bookings"
	"github.com/m04kA/SMC-PetHotelService/internal/service/capacity"
	petsService "github.com/m04kA/SMC-PetHotelService/internal/service/pets"
	roomsService "github.com/m04kA/SMC-PetHotelService/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-PetHotelService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-PetHotelService/internal/usecase/create_booking"
	getDashboardUC "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_dashboard"
	getRoomCalendarUC "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_room_calendar"
	transitionBookingUC "github.com/m04kA/SMC-PetHotelService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-PetHotelService/pkg/metrics"
)

// App собранные сервисы и use cases, общие для HTTP сервера и CLI
type App struct {
	Access   *access.Checker
	Capacity *capacity.Service

	Bookings *bookingsService.Service
	Pets     *petsService.Service
	Rooms    *roomsService.Service

	Workflow          *transitionBookingUC.UseCase
	CreateBooking     *createBookingUC.UseCase
	RoomCalendar      *getRoomCalendarUC.UseCase
	CheckAvailability *checkAvailabilityUC.UseCase
	Dashboard         *getDashboardUC.UseCase
}

// New связывает сервисы поверх хранилища. m может быть nil
func New(cfg *config.Config, storage *Storage, m *metrics.Metrics, log Logger) *App {
	cache := capacity.NewCache(time.Duration(cfg.Booking.CacheTTL) * time.Second)
	capacitySvc := capacity.NewService(storage.Rooms, storage.Bookings, cache, m, log)

	// Уведомления необязательны: без URL интерфейс остаётся nil
	var notifier transitionBookingUC.Notifier
	if cfg.Notify.URL != "" {
		notifier = notifyservice.NewClient(cfg.Notify.URL, time.Duration(cfg.Notify.Timeout)*time.Second, log)
		log.Info("Notification client initialized (url=%s, timeout=%ds)", cfg.Notify.URL, cfg.Notify.Timeout)
	}

	workflow := transitionBookingUC.NewUseCase(storage.Bookings, storage.Rooms, storage.Tx, capacitySvc, notifier, m, log)
	checker := access.NewChecker(cfg.Admin.UserIDs)

	policy := createBookingUC.Policy{
		AutoApprove:   cfg.Booking.AutoApprove,
		Precheck:      cfg.Booking.CreationPolicy == config.CreationPolicyPrecheck,
		MaxStayNights: cfg.Booking.MaxStayNights,
	}

	return &App{
		Access:   checker,
		Capacity: capacitySvc,

		Bookings: bookingsService.NewService(storage.Bookings, workflow, checker, log),
		Pets:     petsService.NewService(storage.Pets, log),
		Rooms:    roomsService.NewService(storage.Rooms, log),

		Workflow: workflow,
		CreateBooking: createBookingUC.NewUseCase(
			storage.Bookings,
			storage.Rooms,
			storage.Pets,
			capacitySvc,
			workflow,
			storage.Tx,
			policy,
			log,
		),
		RoomCalendar:      getRoomCalendarUC.NewUseCase(capacitySvc, log),
		CheckAvailability: checkAvailabilityUC.NewUseCase(capacitySvc, storage.Pets, log),
		Dashboard:         getDashboardUC.NewUseCase(storage.Rooms, storage.Bookings, storage.Tx, log),
	}
}
