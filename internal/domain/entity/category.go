package entity

import "time"

// Category representa una categoría de artículos. Name y Slug son únicos en la
// colección; Slug se deriva siempre del Name vigente.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
