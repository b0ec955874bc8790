package rooms

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/service/rooms/models"
)

// Service сервис каталога номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает все номера
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// Create заводит новый номер
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: name=%q, small=%d, medium=%d, price=%.2f",
		req.Name, req.SmallCapacity, req.MediumCapacity, req.NightlyPrice)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.SmallCapacity < 0 || req.MediumCapacity < 0 {
		return nil, fmt.Errorf("%w: capacities must not be negative", ErrInvalidInput)
	}
	if req.SmallCapacity+req.MediumCapacity == 0 {
		return nil, fmt.Errorf("%w: room must host at least one pet", ErrInvalidInput)
	}
	if req.NightlyPrice < 0 {
		return nil, fmt.Errorf("%w: nightly price must not be negative", ErrInvalidInput)
	}

	created, err := s.roomRepo.Create(ctx, &domain.Room{
		Name:           name,
		Description:    req.Description,
		NightlyPrice:   req.NightlyPrice,
		SmallCapacity:  req.SmallCapacity,
		MediumCapacity: req.MediumCapacity,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}
