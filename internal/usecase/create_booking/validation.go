package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, today types.Date, maxStayNights int) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if err := domain.ValidateStay(req.CheckIn, req.CheckOut, len(req.PetIDs)); err != nil {
		return err
	}

	if len(req.PetIDs) > domain.MaxPetsPerBooking {
		return fmt.Errorf("%w: at most %d pets per booking", ErrInvalidInput, domain.MaxPetsPerBooking)
	}

	if err := validatePetIDs(req.PetIDs); err != nil {
		return err
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Заезд сегодня допустим, вчера - нет
	if req.CheckIn.Before(today) {
		return fmt.Errorf("%w: %s is before %s", ErrCheckInInPast, req.CheckIn, today)
	}

	if maxStayNights > 0 && types.DaysBetween(req.CheckIn, req.CheckOut) > maxStayNights {
		return fmt.Errorf("%w: at most %d nights", ErrStayTooLong, maxStayNights)
	}

	return nil
}

// validatePetIDs проверяет, что ID положительные и не повторяются
func validatePetIDs(ids []int64) error {
	if err := domain.ValidatePetIDs(ids); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// validatePets проверяет, что все питомцы найдены и принадлежат владельцу
func validatePets(ownerID int64, requested []int64, pets []domain.Pet) error {
	found := make(map[int64]domain.Pet, len(pets))
	for _, pet := range pets {
		found[pet.ID] = pet
	}

	for _, id := range requested {
		pet, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: id=%d", ErrPetNotFound, id)
		}
		if pet.OwnerID != ownerID {
			return fmt.Errorf("%w: id=%d", ErrPetNotOwned, id)
		}
	}
	return nil
}
