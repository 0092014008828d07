package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

var _ repository.HomeRepository = (*HomeRepo)(nil)

const homeColumns = `h.id, h.address, h.city, h.price, h.property_type, h.number_of_bedrooms,
	h.number_of_bathrooms, h.land_size, h.listed_date, h.realtor_id, h.created_at, h.updated_at`

// HomeRepo implementación del puerto HomeRepository sobre PostgreSQL.
type HomeRepo struct {
	db Querier
}

// NewHomeRepository construye el adaptador; db puede ser el pool o una tx.
func NewHomeRepository(db Querier) *HomeRepo {
	return &HomeRepo{db: db}
}

// Create persiste un inmueble.
func (r *HomeRepo) Create(ctx context.Context, h *entity.Home) error {
	query := `
		INSERT INTO homes (id, address, city, price, property_type, number_of_bedrooms,
			number_of_bathrooms, land_size, listed_date, realtor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		h.ID, h.Address, h.City, h.Price, h.PropertyType, h.NumberOfBedrooms,
		h.NumberOfBathrooms, h.LandSize, h.ListedDate, h.RealtorID, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: realtor inexistente", domain.ErrInvalidInput)
		}
		if isOutOfRange(err) {
			return fmt.Errorf("%w: valor fuera de rango", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert home: %w", err)
	}
	return nil
}

// GetByID obtiene un inmueble por ID; (nil, nil) si no existe.
func (r *HomeRepo) GetByID(ctx context.Context, id string) (*entity.Home, error) {
	query := `SELECT ` + homeColumns + ` FROM homes h WHERE h.id = $1`
	var h entity.Home
	if err := scanHome(r.db.QueryRow(ctx, query, id), &h); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get home: %w", err)
	}
	return &h, nil
}

// GetDetail obtiene el inmueble con todas sus imágenes (por antigüedad) y el contacto del realtor.
func (r *HomeRepo) GetDetail(ctx context.Context, id string) (*entity.HomeDetail, error) {
	query := `
		SELECT ` + homeColumns + `, u.name, u.email, u.phone
		FROM homes h
		JOIN users u ON u.id = h.realtor_id
		WHERE h.id = $1`
	var d entity.HomeDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Address, &d.City, &d.Price, &d.PropertyType, &d.NumberOfBedrooms,
		&d.NumberOfBathrooms, &d.LandSize, &d.ListedDate, &d.RealtorID, &d.CreatedAt, &d.UpdatedAt,
		&d.Realtor.Name, &d.Realtor.Email, &d.Realtor.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get home detail: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, url, home_id, created_at FROM images WHERE home_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()
	d.Images = []entity.Image{}
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.HomeID, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		d.Images = append(d.Images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return &d, nil
}

// List devuelve los inmuebles que cumplen el filtro con la URL de su primera imagen como portada.
func (r *HomeRepo) List(ctx context.Context, filter repository.HomeFilter) ([]entity.HomeWithImage, error) {
	where, args := buildHomeWhere(filter)
	query := `
		SELECT ` + homeColumns + `,
			COALESCE((SELECT i.url FROM images i WHERE i.home_id = h.id ORDER BY i.created_at, i.id LIMIT 1), '')
		FROM homes h` + where + `
		ORDER BY h.listed_date DESC, h.id`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list homes: %w", err)
	}
	defer rows.Close()

	list := []entity.HomeWithImage{}
	for rows.Next() {
		var item entity.HomeWithImage
		if err := rows.Scan(
			&item.ID, &item.Address, &item.City, &item.Price, &item.PropertyType, &item.NumberOfBedrooms,
			&item.NumberOfBathrooms, &item.LandSize, &item.ListedDate, &item.RealtorID, &item.CreatedAt, &item.UpdatedAt,
			&item.CoverImage,
		); err != nil {
			return nil, fmt.Errorf("scan home: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos editables. ErrNotFound si el inmueble no existe.
func (r *HomeRepo) Update(ctx context.Context, h *entity.Home) error {
	query := `
		UPDATE homes SET address = $2, city = $3, price = $4, property_type = $5,
			number_of_bedrooms = $6, number_of_bathrooms = $7, land_size = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		h.ID, h.Address, h.City, h.Price, h.PropertyType,
		h.NumberOfBedrooms, h.NumberOfBathrooms, h.LandSize, h.UpdatedAt,
	)
	if err != nil {
		if isOutOfRange(err) {
			return fmt.Errorf("%w: valor fuera de rango", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update home: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el inmueble. Las imágenes deben borrarse antes (DeleteImagesByHome).
func (r *HomeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM homes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete home: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateImages inserta las imágenes en un único batch.
func (r *HomeRepo) CreateImages(ctx context.Context, images []entity.Image) error {
	if len(images) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, img := range images {
		batch.Queue(`INSERT INTO images (id, url, home_id, created_at) VALUES ($1, $2, $3, $4)`,
			img.ID, img.URL, img.HomeID, img.CreatedAt)
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for range images {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert image: %w", err)
		}
	}
	return nil
}

// DeleteImagesByHome elimina todas las imágenes de un inmueble.
func (r *HomeRepo) DeleteImagesByHome(ctx context.Context, homeID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM images WHERE home_id = $1`, homeID); err != nil {
		return fmt.Errorf("delete images: %w", err)
	}
	return nil
}

// buildHomeWhere traduce el filtro a una cláusula WHERE parametrizada. Filtro vacío -> "".
func buildHomeWhere(f repository.HomeFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.City != nil {
		add("h.city = $%d", *f.City)
	}
	if f.MinPrice != nil {
		add("h.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("h.price <= $%d", *f.MaxPrice)
	}
	if f.PropertyType != nil {
		add("h.property_type = $%d", *f.PropertyType)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}

func scanHome(row pgx.Row, h *entity.Home) error {
	return row.Scan(
		&h.ID, &h.Address, &h.City, &h.Price, &h.PropertyType, &h.NumberOfBedrooms,
		&h.NumberOfBathrooms, &h.LandSize, &h.ListedDate, &h.RealtorID, &h.CreatedAt, &h.UpdatedAt,
	)
}
