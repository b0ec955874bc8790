package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetHotelService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"owner_id",
	"room_id",
	"check_in",
	"check_out",
	"status",
	"total_price",
	"notes",
	"checked_in_at",
	"checked_out_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование (без питомцев, см. LinkPets)
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"owner_id",
			"room_id",
			"check_in",
			"check_out",
			"status",
			"total_price",
			"notes",
		).
		Values(
			booking.OwnerID,
			booking.RoomID,
			booking.CheckIn,
			booking.CheckOut,
			booking.Status,
			booking.TotalPrice,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// LinkPets привязывает питомцев к бронированию
func (r *Repository) LinkPets(ctx context.Context, bookingID int64, petIDs []int64) error {
	if len(petIDs) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("booking_pets").Columns("booking_id", "pet_id")
	for _, petID := range petIDs {
		builder = builder.Values(bookingID, petID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: LinkPets - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LinkPets - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает бронирование вместе с питомцами.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	bookings, err := r.selectBookings(ctx, "GetByID", selectBuilder)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings[0], nil
}

// GetByFilter получает бронирования с фильтрацией.
// Пересечение с окном [From, To]: check_in <= To AND check_out > From,
// день выезда не считается занятым.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.OwnerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"check_in": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.From})
	}
	if filter.ExcludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeBookingID})
	}
	if len(filter.Statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}
	if len(filter.ExcludeStatuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(filter.ExcludeStatuses)})
	}

	selectBuilder = selectBuilder.OrderBy("check_in ASC", "id ASC")

	// блокируем пересекающиеся бронирования на время проверки вместимости
	if filter.ForUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.selectBookings(ctx, "GetByFilter", selectBuilder)
}

// UpdateStatus обновляет статус и отметки времени жизненного цикла
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, ts domain.StatusTimestamps) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if ts.CheckedInAt != nil {
		updateBuilder = updateBuilder.Set("checked_in_at", *ts.CheckedInAt)
	}
	if ts.CheckedOutAt != nil {
		updateBuilder = updateBuilder.Set("checked_out_at", *ts.CheckedOutAt)
	}
	if ts.CancelledAt != nil {
		updateBuilder = updateBuilder.Set("cancelled_at", *ts.CancelledAt)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// selectBookings выполняет запрос и догружает питомцев
func (r *Repository) selectBookings(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}

	bookings, err := r.scanBookings(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := r.loadPets(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// loadPets одним запросом загружает питомцев для списка бронирований
func (r *Repository) loadPets(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.Booking, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query, args, err := psqlbuilder.Select(
		"bp.booking_id",
		"p.id",
		"p.owner_id",
		"p.name",
		"p.species",
		"p.breed",
		"p.weight",
		"p.size",
		"p.notes",
		"p.created_at",
	).
		From("booking_pets bp").
		Join("pets p ON p.id = bp.pet_id").
		Where(squirrel.Eq{"bp.booking_id": ids}).
		OrderBy("bp.booking_id ASC", "p.id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadPets - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadPets - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID int64
			pet       domain.Pet
			size      sql.NullString
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&bookingID,
			&pet.ID,
			&pet.OwnerID,
			&pet.Name,
			&pet.Species,
			&pet.Breed,
			&pet.Weight,
			&size,
			&pet.Notes,
			&createdAt,
		)
		if err != nil {
			return fmt.Errorf("%w: loadPets - scan row: %w", ErrScanRow, err)
		}
		pet.Size = domain.SizeClass(size.String)
		pet.CreatedAt = createdAt.Time

		if b, ok := byID[bookingID]; ok {
			b.Pets = append(b.Pets, pet)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadPets - rows error: %w", ErrScanRow, err)
	}
	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.OwnerID,
			&booking.RoomID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.Status,
			&booking.TotalPrice,
			&booking.Notes,
			&booking.CheckedInAt,
			&booking.CheckedOutAt,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time
		booking.Pets = make([]domain.Pet, 0)

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
