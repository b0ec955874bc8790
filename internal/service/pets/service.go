package pets

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/service/pets/models"
)

// Service сервис реестра питомцев
type Service struct {
	petRepo PetRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса питомцев
func NewService(petRepo PetRepository, logger Logger) *Service {
	return &Service{
		petRepo: petRepo,
		logger:  logger,
	}
}

// Register регистрирует питомца владельца.
// Размерный класс вычисляется по весу; заявленный класс должен с ним совпадать.
func (s *Service) Register(ctx context.Context, req *models.RegisterPetRequest) (*models.PetResponse, error) {
	s.logger.Info("Register: owner=%d, name=%q, weight=%v", req.OwnerID, req.Name, req.Weight)

	pet, err := s.toDomain(req)
	if err != nil {
		s.logger.Warn("Register: validation failed for owner=%d: %v", req.OwnerID, err)
		return nil, err
	}

	created, err := s.petRepo.Create(ctx, pet)
	if err != nil {
		s.logger.Error("Register: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered pet id=%d size=%s", created.ID, created.Size)
	return models.FromDomainPet(created), nil
}

// List возвращает питомцев владельца
func (s *Service) List(ctx context.Context, ownerID int64) (*models.PetListResponse, error) {
	s.logger.Info("List: fetching pets for owner=%d", ownerID)

	pets, err := s.petRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("List: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPetList(pets), nil
}

func (s *Service) toDomain(req *models.RegisterPetRequest) (*domain.Pet, error) {
	if req.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > domain.MaxPetNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxPetNameLength)
	}

	species := strings.TrimSpace(req.Species)
	if species == "" {
		return nil, fmt.Errorf("%w: species is required", ErrInvalidInput)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	weight := domain.RoundWeight(req.Weight)
	size, err := domain.Classify(weight)
	if err != nil {
		return nil, err
	}

	if req.Size != nil && strings.TrimSpace(*req.Size) != "" {
		declared, err := domain.ParseSizeClass(*req.Size)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateDeclaredSize(declared, weight); err != nil {
			return nil, err
		}
	}

	return &domain.Pet{
		OwnerID: req.OwnerID,
		Name:    name,
		Species: species,
		Breed:   req.Breed,
		Weight:  weight,
		Size:    size,
		Notes:   req.Notes,
	}, nil
}
