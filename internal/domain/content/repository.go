package content

import "context"

// Repository defines persistence behaviours for contents.
type Repository interface {
	Create(ctx context.Context, content *Content) error
	GetByID(ctx context.Context, id int64) (*Content, error)
	List(ctx context.Context) ([]*Content, error)
	ListByRef(ctx context.Context, refID int64) ([]*Content, error)
	Update(ctx context.Context, content *Content) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*Content, error)
}
