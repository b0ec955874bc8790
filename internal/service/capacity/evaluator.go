package capacity

import (
	"fmt"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// RemainingForStay возвращает минимум свободных мест по каждому классу
// среди всех ночей [checkIn, checkOut). Значения не обрезаются нулём.
// Если в таблице нет строки хотя бы для одной ночи - ErrIncompleteData,
// отсутствие данных не трактуется как "свободно".
func RemainingForStay(table *domain.CapacityTable, checkIn, checkOut types.Date) (domain.Remaining, error) {
	nights := types.NightsOf(checkIn, checkOut)
	if len(nights) == 0 {
		return domain.Remaining{}, fmt.Errorf("%w: check-out %s must be after check-in %s", domain.ErrInvalidStay, checkOut, checkIn)
	}

	var result domain.Remaining
	for i, night := range nights {
		row, ok := table.Row(night)
		if !ok {
			return domain.Remaining{}, fmt.Errorf("%w: room id=%d has no row for %s", domain.ErrIncompleteData, table.RoomID, night)
		}

		if i == 0 || row.SmallRemaining < result.Small {
			result.Small = row.SmallRemaining
		}
		if i == 0 || row.MediumRemaining < result.Medium {
			result.Medium = row.MediumRemaining
		}
	}

	return result, nil
}

// CanAdmit проверяет, помещаются ли запрошенные питомцы в остаток
func CanAdmit(requested domain.SizeCounts, remaining domain.Remaining) bool {
	return remaining.Admits(requested)
}

// CheckStay объединяет RemainingForStay и CanAdmit: ErrCapacityExceeded, если места нет
func CheckStay(table *domain.CapacityTable, checkIn, checkOut types.Date, requested domain.SizeCounts) (domain.Remaining, error) {
	remaining, err := RemainingForStay(table, checkIn, checkOut)
	if err != nil {
		return domain.Remaining{}, err
	}

	if !CanAdmit(requested, remaining) {
		return remaining, fmt.Errorf("%w: requested small=%d medium=%d, remaining small=%d medium=%d",
			domain.ErrCapacityExceeded, requested.Small, requested.Medium, remaining.Small, remaining.Medium)
	}

	return remaining, nil
}
