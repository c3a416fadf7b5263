package page

import "context"

// Repository defines persistence behaviours for pages.
type Repository interface {
	Create(ctx context.Context, page *Page) error
	GetByID(ctx context.Context, id int64) (*Page, error)
	List(ctx context.Context, sectionName string) ([]*Page, error)
	Update(ctx context.Context, page *Page) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*Page, error)
}
