package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetHotelService/pkg/psqlbuilder"
)

var roomColumns = []string{
	"id",
	"name",
	"description",
	"nightly_price",
	"small_capacity",
	"medium_capacity",
	"created_at",
}

// roomRow строка таблицы rooms
type roomRow struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	Description    sql.NullString `db:"description"`
	NightlyPrice   float64        `db:"nightly_price"`
	SmallCapacity  int            `db:"small_capacity"`
	MediumCapacity int            `db:"medium_capacity"`
	CreatedAt      sql.NullTime   `db:"created_at"`
}

func (r roomRow) toDomain() *domain.Room {
	room := &domain.Room{
		ID:             r.ID,
		Name:           r.Name,
		NightlyPrice:   r.NightlyPrice,
		SmallCapacity:  r.SmallCapacity,
		MediumCapacity: r.MediumCapacity,
		CreatedAt:      r.CreatedAt.Time,
	}
	if r.Description.Valid {
		description := r.Description.String
		room.Description = &description
	}
	return room
}

// Repository репозиторий номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет номер
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("name", "description", "nightly_price", "small_capacity", "medium_capacity").
		Values(room.Name, room.Description, room.NightlyPrice, room.SmallCapacity, room.MediumCapacity).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	room.CreatedAt = createdAt.Time

	return room, nil
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	rooms, err := r.selectRooms(ctx, "GetByID", psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, ErrRoomNotFound
	}
	return rooms[0], nil
}

// List получает все номера, упорядоченные по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	return r.selectRooms(ctx, "List", psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id ASC"))
}

// selectRooms выполняет запрос и раскладывает строки через sqlx
func (r *Repository) selectRooms(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var dest []roomRow
	if err := sqlx.StructScan(rows, &dest); err != nil {
		return nil, fmt.Errorf("%w: %s - scan rooms: %w", ErrScanRow, op, err)
	}

	rooms := make([]*domain.Room, 0, len(dest))
	for _, row := range dest {
		rooms = append(rooms, row.toDomain())
	}
	return rooms, nil
}
