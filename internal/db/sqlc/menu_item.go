package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

const menuItemColumns = `id, name, slug, description, base_price, category, image_url, popular, available,
variations, add_ons, discount_price, discount_start_date, discount_end_date, discount_active,
created_at, updated_at`

func scanMenuItem(row pgx.Row) (MenuItem, error) {
	var m MenuItem
	err := row.Scan(
		&m.ID, &m.Name, &m.Slug, &m.Description, &m.BasePrice, &m.Category, &m.ImageURL, &m.Popular, &m.Available,
		&m.Variations, &m.AddOns, &m.DiscountPrice, &m.DiscountStartDate, &m.DiscountEndDate, &m.DiscountActive,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

type CreateMenuItemParams struct {
	ID          string
	Name        string
	Slug        string
	Description string
	BasePrice   float64
	Category    string
	ImageURL    *string
	Popular     bool
	Available   bool
	Variations  json.RawMessage
	AddOns      json.RawMessage
}

func (q *Queries) CreateMenuItem(ctx context.Context, arg CreateMenuItemParams) (MenuItem, error) {
	query := `INSERT INTO menu_items (id, name, slug, description, base_price, category, image_url, popular,
available, variations, add_ons)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + menuItemColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.Name, arg.Slug, arg.Description, arg.BasePrice, arg.Category, arg.ImageURL, arg.Popular,
		arg.Available, arg.Variations, arg.AddOns,
	)
	return scanMenuItem(row)
}

func (q *Queries) GetMenuItemByID(ctx context.Context, id string) (MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	return scanMenuItem(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) GetMenuItemBySlug(ctx context.Context, slug string) (MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE slug = $1`
	return scanMenuItem(q.db.QueryRow(ctx, query, slug))
}

type ListMenuItemsParams struct {
	Category      *string
	AvailableOnly bool
}

func (q *Queries) ListMenuItems(ctx context.Context, arg ListMenuItemsParams) ([]MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE 1=1`
	args := []any{}

	if arg.Category != nil {
		args = append(args, *arg.Category)
		query += ` AND category = $1`
	}
	if arg.AvailableOnly {
		query += ` AND available = true`
	}

	query += ` ORDER BY category, name`

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

type UpdateMenuItemParams struct {
	ID                string
	Name              *string
	Description       *string
	BasePrice         *float64
	Category          *string
	Popular           *bool
	Available         *bool
	Variations        json.RawMessage
	AddOns            json.RawMessage
	DiscountPrice     *float64
	DiscountStartDate *string
	DiscountEndDate   *string
	DiscountActive    *bool
}

func (q *Queries) UpdateMenuItem(ctx context.Context, arg UpdateMenuItemParams) (MenuItem, error) {
	query := `UPDATE menu_items
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    base_price = COALESCE($4, base_price),
    category = COALESCE($5, category),
    popular = COALESCE($6, popular),
    available = COALESCE($7, available),
    variations = COALESCE($8, variations),
    add_ons = COALESCE($9, add_ons),
    discount_price = COALESCE($10, discount_price),
    discount_start_date = COALESCE($11::timestamptz, discount_start_date),
    discount_end_date = COALESCE($12::timestamptz, discount_end_date),
    discount_active = COALESCE($13, discount_active),
    updated_at = now()
WHERE id = $1
RETURNING ` + menuItemColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.Name, arg.Description, arg.BasePrice, arg.Category, arg.Popular, arg.Available,
		arg.Variations, arg.AddOns, arg.DiscountPrice, arg.DiscountStartDate, arg.DiscountEndDate,
		arg.DiscountActive,
	)
	return scanMenuItem(row)
}

type UpdateMenuItemImageParams struct {
	ID       string
	ImageURL string
}

func (q *Queries) UpdateMenuItemImage(ctx context.Context, arg UpdateMenuItemImageParams) (MenuItem, error) {
	query := `UPDATE menu_items SET image_url = $2, updated_at = now() WHERE id = $1 RETURNING ` + menuItemColumns
	return scanMenuItem(q.db.QueryRow(ctx, query, arg.ID, arg.ImageURL))
}

func (q *Queries) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return err
}
