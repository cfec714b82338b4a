package entity

import "time"

// Category is a node in the product category hierarchy. ParentID is empty
// for top-level categories.
type Category struct {
	ID        string
	Name      string
	ParentID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
