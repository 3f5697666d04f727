package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const branchColumns = `id, name, address, phone, latitude, longitude, is_main, is_active, created_at, updated_at`

func scanBranch(row pgx.Row) (Branch, error) {
	var b Branch
	err := row.Scan(
		&b.ID, &b.Name, &b.Address, &b.Phone, &b.Latitude, &b.Longitude, &b.IsMain, &b.IsActive,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

type CreateBranchParams struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Latitude  float64
	Longitude float64
	IsMain    bool
	IsActive  bool
}

func (q *Queries) CreateBranch(ctx context.Context, arg CreateBranchParams) (Branch, error) {
	query := `INSERT INTO branches (id, name, address, phone, latitude, longitude, is_main, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + branchColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.Name, arg.Address, arg.Phone, arg.Latitude, arg.Longitude, arg.IsMain, arg.IsActive,
	)
	return scanBranch(row)
}

func (q *Queries) GetBranchByID(ctx context.Context, id string) (Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE id = $1`
	return scanBranch(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) ListBranches(ctx context.Context, activeOnly bool) ([]Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY is_main DESC, name`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []Branch{}
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	return branches, rows.Err()
}

type UpdateBranchParams struct {
	ID        string
	Name      *string
	Address   *string
	Phone     *string
	Latitude  *float64
	Longitude *float64
	IsMain    *bool
	IsActive  *bool
}

func (q *Queries) UpdateBranch(ctx context.Context, arg UpdateBranchParams) (Branch, error) {
	query := `UPDATE branches
SET name = COALESCE($2, name),
    address = COALESCE($3, address),
    phone = COALESCE($4, phone),
    latitude = COALESCE($5, latitude),
    longitude = COALESCE($6, longitude),
    is_main = COALESCE($7, is_main),
    is_active = COALESCE($8, is_active),
    updated_at = now()
WHERE id = $1
RETURNING ` + branchColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.Name, arg.Address, arg.Phone, arg.Latitude, arg.Longitude, arg.IsMain, arg.IsActive,
	)
	return scanBranch(row)
}

func (q *Queries) DeleteBranch(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	return err
}
