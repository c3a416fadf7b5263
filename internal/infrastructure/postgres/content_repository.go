package postgres

import (
	"context"
	"errors"

	domain "fieldcms/backend/internal/domain/content"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository persists contents in PostgreSQL.
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository constructs a repository.
func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

var _ domain.Repository = (*ContentRepository)(nil)

// Create inserts a new content record and fills in the generated id.
func (r *ContentRepository) Create(ctx context.Context, content *domain.Content) error {
	const query = `
INSERT INTO contents (ref_id, short_desc, long_desc, image_path, title, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`
	return r.pool.QueryRow(ctx, query,
		content.RefID,
		content.ShortDesc,
		content.LongDesc,
		content.ImagePath,
		content.Title,
		content.CreatedAt,
		content.UpdatedAt,
	).Scan(&content.ID)
}

// GetByID retrieves a content record by id.
func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*domain.Content, error) {
	const query = `
SELECT id, ref_id, short_desc, long_desc, image_path, title, created_at, updated_at
FROM contents WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	content, err := scanContent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return content, nil
}

// List returns all contents, newest first.
func (r *ContentRepository) List(ctx context.Context) ([]*domain.Content, error) {
	const query = `
SELECT id, ref_id, short_desc, long_desc, image_path, title, created_at, updated_at
FROM contents ORDER BY id DESC
`
	return r.queryContents(ctx, query)
}

// ListByRef returns contents attached to the referenced page.
func (r *ContentRepository) ListByRef(ctx context.Context, refID int64) ([]*domain.Content, error) {
	const query = `
SELECT id, ref_id, short_desc, long_desc, image_path, title, created_at, updated_at
FROM contents WHERE ref_id = $1 ORDER BY id DESC
`
	return r.queryContents(ctx, query, refID)
}

// Update modifies an existing content record.
func (r *ContentRepository) Update(ctx context.Context, content *domain.Content) error {
	const query = `
UPDATE contents
SET ref_id = $2, short_desc = $3, long_desc = $4, image_path = $5, title = $6, updated_at = now()
WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, query,
		content.ID,
		content.RefID,
		content.ShortDesc,
		content.LongDesc,
		content.ImagePath,
		content.Title,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a content record by id.
func (r *ContentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contents WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search returns contents matching the term in any descriptive column.
func (r *ContentRepository) Search(ctx context.Context, term string) ([]*domain.Content, error) {
	const query = `
SELECT id, ref_id, short_desc, long_desc, image_path, title, created_at, updated_at
FROM contents
WHERE short_desc ILIKE $1
   OR long_desc ILIKE $1
   OR title ILIKE $1
   OR image_path ILIKE $1
ORDER BY id DESC
`
	return r.queryContents(ctx, query, likePattern(term))
}

func (r *ContentRepository) queryContents(ctx context.Context, query string, args ...any) ([]*domain.Content, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []*domain.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contents, nil
}

func scanContent(row pgx.Row) (*domain.Content, error) {
	var c domain.Content
	err := row.Scan(
		&c.ID,
		&c.RefID,
		&c.ShortDesc,
		&c.LongDesc,
		&c.ImagePath,
		&c.Title,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
