package repository

import "gorm.io/gorm"

// DefaultPerPage is the page size used when the client does not ask for one.
const DefaultPerPage = 15

// Page describes offset-based pagination for list queries.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page number and size to usable values.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPerPage
	}
	return p
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the row limit for the page.
func (p Page) Limit() int {
	return p.Size
}

// userIdentity restricts an eager-loaded User to its identity projection.
// Loading only id/name/email keeps list queries off the N+1 path without
// dragging hashes or timestamps along.
func userIdentity(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}
