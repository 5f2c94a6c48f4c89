// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// ImageRef points at an image held by the external image service.
// Rows are fetched by owning user, never mutated from this core.
type ImageRef struct {
	ID          string    `json:"id"`
	OwnerUserID uuid.UUID `json:"owner_user_id"`
	URL         string    `json:"url"`
}
