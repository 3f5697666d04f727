package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const siteSettingColumns = `key, value, type, description, updated_at`

func scanSiteSetting(row pgx.Row) (SiteSetting, error) {
	var s SiteSetting
	err := row.Scan(&s.Key, &s.Value, &s.Type, &s.Description, &s.UpdatedAt)
	return s, err
}

type UpsertSiteSettingParams struct {
	Key         string
	Value       string
	Type        string
	Description *string
}

func (q *Queries) UpsertSiteSetting(ctx context.Context, arg UpsertSiteSettingParams) (SiteSetting, error) {
	query := `INSERT INTO site_settings (key, value, type, description)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    type = EXCLUDED.type,
    description = COALESCE(EXCLUDED.description, site_settings.description),
    updated_at = now()
RETURNING ` + siteSettingColumns

	return scanSiteSetting(q.db.QueryRow(ctx, query, arg.Key, arg.Value, arg.Type, arg.Description))
}

func (q *Queries) GetSiteSetting(ctx context.Context, key string) (SiteSetting, error) {
	query := `SELECT ` + siteSettingColumns + ` FROM site_settings WHERE key = $1`
	return scanSiteSetting(q.db.QueryRow(ctx, query, key))
}

func (q *Queries) ListSiteSettings(ctx context.Context) ([]SiteSetting, error) {
	query := `SELECT ` + siteSettingColumns + ` FROM site_settings ORDER BY key`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []SiteSetting{}
	for rows.Next() {
		setting, err := scanSiteSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}
