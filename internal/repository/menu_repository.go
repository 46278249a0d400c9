package repository

import (
	"context"
	"fmt"

	"prato/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// ListByCategory retrieves the items of one category, ordered ascending by
// day of week.
func (r *menuRepository) ListByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, description, image_url, day_of_week, category
		FROM menu_items
		WHERE category = $1
		ORDER BY day_of_week ASC
	`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		r.logger.Error().Err(err).Str("category", category).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.ImageURL, &item.DayOfWeek, &item.Category)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	query := `
		SELECT id, name, description, image_url, day_of_week, category
		FROM menu_items
		WHERE id = $1
	`

	var item model.MenuItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.ImageURL,
		&item.DayOfWeek,
		&item.Category,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &item, nil
}

// GetOpeningWindow retrieves the configured opening window. Returns nil
// with no error when the settings table has no row yet.
func (r *menuRepository) GetOpeningWindow(ctx context.Context) (*model.OpeningWindow, error) {
	query := `
		SELECT opens_at, closes_at
		FROM settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var window model.OpeningWindow
	err := r.pool.QueryRow(ctx, query).Scan(&window.OpensAt, &window.ClosesAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Msg("no opening window configured")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query opening window")
		return nil, fmt.Errorf("failed to query opening window: %w", err)
	}

	return &window, nil
}
