package pet

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

var petColumns = []string{
	"id",
	"owner_id",
	"name",
	"species",
	"breed",
	"weight",
	"size",
	"notes",
	"created_at",
}

// petRow строка таблицы pets
type petRow struct {
	ID        int64          `db:"id"`
	OwnerID   int64          `db:"owner_id"`
	Name      string         `db:"name"`
	Species   string         `db:"species"`
	Breed     sql.NullString `db:"breed"`
	Weight    float64        `db:"weight"`
	Size      sql.NullString `db:"size"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r petRow) toDomain() domain.Pet {
	p := domain.Pet{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Species:   r.Species,
		Weight:    r.Weight,
		Size:      domain.SizeClass(r.Size.String),
		CreatedAt: r.CreatedAt.Time,
	}
	if r.Breed.Valid {
		breed := r.Breed.String
		p.Breed = &breed
	}
	if r.Notes.Valid {
		notes := r.Notes.String
		p.Notes = &notes
	}
	return p
}

// Repository репозиторий питомцев
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория питомцев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует питомца
func (r *Repository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pets").
		Columns("owner_id", "name", "species", "breed", "weight", "size", "notes").
		Values(pet.OwnerID, pet.Name, pet.Species, pet.Breed, pet.Weight, string(pet.Size), pet.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&pet.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	pet.CreatedAt = createdAt.Time

	return pet, nil
}

// GetByIDs получает питомцев по списку ID. Отсутствующие ID просто не попадают в результат
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Pet, error) {
	if len(ids) == 0 {
		return []domain.Pet{}, nil
	}

	return r.selectPets(ctx, "GetByIDs", psqlbuilder.Select(petColumns...).
		From("pets").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC"))
}

// ListByOwner получает питомцев владельца
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Pet, error) {
	return r.selectPets(ctx, "ListByOwner", psqlbuilder.Select(petColumns...).
		From("pets").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC"))
}

func (r *Repository) selectPets(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]domain.Pet, error) {
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

	var dest []petRow
	if err := sqlx.StructScan(rows, &dest); err != nil {
		return nil, fmt.Errorf("%w: %s - scan pets: %w", ErrScanRow, op, err)
	}

	pets := make([]domain.Pet, 0, len(dest))
	for _, row := range dest {
		pets = append(pets, row.toDomain())
	}
	return pets, nil
}
