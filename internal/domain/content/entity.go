package content

import (
	"errors"
	"time"
)

// ErrNotFound indicates a content record could not be located.
var ErrNotFound = errors.New("content not found")

// Content is a block of copy attached to a page via RefID.
type Content struct {
	ID        int64     `json:"id"`
	RefID     int64     `json:"ref_id"`
	ShortDesc *string   `json:"short_desc"`
	LongDesc  *string   `json:"long_desc"`
	ImagePath *string   `json:"image_path"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Update applies partial field updates to the content.
func (c *Content) Update(refID *int64, shortDesc, longDesc, imagePath, title *string) {
	if refID != nil {
		c.RefID = *refID
	}
	if shortDesc != nil {
		c.ShortDesc = shortDesc
	}
	if longDesc != nil {
		c.LongDesc = longDesc
	}
	if imagePath != nil {
		c.ImagePath = imagePath
	}
	if title != nil {
		c.Title = title
	}
}
