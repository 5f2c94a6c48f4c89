package service

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ImageService is the narrow view of the external image system this core
// consumes. Images are fetched by owning user and never mutated here.
// A user without images yields an empty slice, not an error.
type ImageService interface {
	GetImagesByUserID(ctx context.Context, userID uuid.UUID) ([]entity.ImageRef, error)
}
