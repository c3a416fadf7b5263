package postgres

import (
	"context"
	"errors"

	domain "fieldcms/backend/internal/domain/page"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PageRepository persists pages in PostgreSQL.
type PageRepository struct {
	pool *pgxpool.Pool
}

// NewPageRepository constructs a repository.
func NewPageRepository(pool *pgxpool.Pool) *PageRepository {
	return &PageRepository{pool: pool}
}

var _ domain.Repository = (*PageRepository)(nil)

// Create inserts a new page record and fills in the generated id.
func (r *PageRepository) Create(ctx context.Context, page *domain.Page) error {
	const query = `
INSERT INTO pages (page_name, section_name, lang, content_type, visible, display_order, attributes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`
	return r.pool.QueryRow(ctx, query,
		page.PageName,
		page.SectionName,
		page.Lang,
		page.ContentType,
		page.Visible,
		page.DisplayOrder,
		page.Attributes,
		page.CreatedAt,
		page.UpdatedAt,
	).Scan(&page.ID)
}

// GetByID retrieves a page by id.
func (r *PageRepository) GetByID(ctx context.Context, id int64) (*domain.Page, error) {
	const query = `
SELECT id, page_name, section_name, lang, content_type, visible, display_order, attributes, created_at, updated_at
FROM pages WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	page, err := scanPage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

// List returns pages ordered for display, optionally narrowed to a section.
func (r *PageRepository) List(ctx context.Context, sectionName string) ([]*domain.Page, error) {
	query := `
SELECT id, page_name, section_name, lang, content_type, visible, display_order, attributes, created_at, updated_at
FROM pages
`
	var args []any
	if sectionName != "" {
		query += "WHERE section_name = $1 "
		args = append(args, sectionName)
	}
	query += "ORDER BY display_order, id DESC"

	return r.queryPages(ctx, query, args...)
}

// Update modifies an existing page record.
func (r *PageRepository) Update(ctx context.Context, page *domain.Page) error {
	const query = `
UPDATE pages
SET page_name = $2, section_name = $3, lang = $4, content_type = $5,
    visible = $6, display_order = $7, attributes = $8, updated_at = now()
WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, query,
		page.ID,
		page.PageName,
		page.SectionName,
		page.Lang,
		page.ContentType,
		page.Visible,
		page.DisplayOrder,
		page.Attributes,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a page by id.
func (r *PageRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM pages WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search returns pages matching the term in any descriptive column.
func (r *PageRepository) Search(ctx context.Context, term string) ([]*domain.Page, error) {
	const query = `
SELECT id, page_name, section_name, lang, content_type, visible, display_order, attributes, created_at, updated_at
FROM pages
WHERE page_name ILIKE $1
   OR section_name ILIKE $1
   OR lang ILIKE $1
   OR content_type ILIKE $1
   OR attributes ILIKE $1
ORDER BY display_order, id DESC
`
	return r.queryPages(ctx, query, likePattern(term))
}

func (r *PageRepository) queryPages(ctx context.Context, query string, args ...any) ([]*domain.Page, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*domain.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

func scanPage(row pgx.Row) (*domain.Page, error) {
	var p domain.Page
	err := row.Scan(
		&p.ID,
		&p.PageName,
		&p.SectionName,
		&p.Lang,
		&p.ContentType,
		&p.Visible,
		&p.DisplayOrder,
		&p.Attributes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
