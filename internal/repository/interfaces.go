package repository

import (
	"context"

	"github.com/ILikePizza555/galleria/internal/domain/models"

	"github.com/google/uuid"
)

type GalleryRepository interface {
	// CreateGallery inserts a gallery for a channel. Returns
	// storage.ErrGalleryExists when the channel already has one; the database
	// unique constraint is the authority, not the caller's pre-check.
	CreateGallery(ctx context.Context, name, channelID string) (models.Gallery, error)
	// FindByChannelID returns storage.ErrGalleryNotFound when the channel has
	// no gallery bound to it.
	FindByChannelID(ctx context.Context, channelID string) (models.Gallery, error)
	GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error)
}

type PostRepository interface {
	// InsertPosts writes one post per reference in a single multi-row insert.
	InsertPosts(ctx context.Context, galleryID uuid.UUID, messageID string, refs []models.MediaReference) ([]models.GalleryPost, error)
	// ReplacePosts atomically deletes every post for messageID and inserts the
	// new references. The delete runs even when refs is empty.
	ReplacePosts(ctx context.Context, galleryID uuid.UUID, messageID string, refs []models.MediaReference) ([]models.GalleryPost, error)
	ListByGalleryID(ctx context.Context, galleryID uuid.UUID) ([]models.GalleryPost, error)
	ListByMessageID(ctx context.Context, messageID string) ([]models.GalleryPost, error)
}
