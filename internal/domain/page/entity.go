package page

import (
	"errors"
	"time"
)

// ErrNotFound indicates a page could not be located.
var ErrNotFound = errors.New("page not found")

// Page captures one entry of the site structure.
type Page struct {
	ID           int64     `json:"id"`
	PageName     string    `json:"page_name"`
	SectionName  string    `json:"section_name"`
	Lang         string    `json:"lang"`
	ContentType  string    `json:"content_type"`
	Visible      bool      `json:"visible"`
	DisplayOrder int       `json:"display_order"`
	Attributes   *string   `json:"attributes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Update applies partial field updates to the page.
func (p *Page) Update(pageName, sectionName, lang, contentType *string, visible *bool, displayOrder *int, attributes *string) {
	if pageName != nil {
		p.PageName = *pageName
	}
	if sectionName != nil {
		p.SectionName = *sectionName
	}
	if lang != nil {
		p.Lang = *lang
	}
	if contentType != nil {
		p.ContentType = *contentType
	}
	if visible != nil {
		p.Visible = *visible
	}
	if displayOrder != nil {
		p.DisplayOrder = *displayOrder
	}
	if attributes != nil {
		p.Attributes = attributes
	}
}
