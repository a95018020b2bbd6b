package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery binds one Discord channel to a collection of extracted media posts.
// A channel has at most one gallery, enforced by a unique constraint on channel_id.
type Gallery struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ChannelID string    `json:"channel_id" db:"channel_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// GalleryPost is one persisted media reference tied to a gallery and the
// message it was extracted from. A single message may produce several posts;
// the whole set for one message is replaced as a unit when the message is edited.
type GalleryPost struct {
	ID              uuid.UUID `json:"id" db:"id"`
	GalleryID       uuid.UUID `json:"gallery_id" db:"gallery_id"`
	MessageID       string    `json:"message_id" db:"message_id"`
	SourceURL       *string   `json:"source_url,omitempty" db:"source_url"`
	MediaURL        *string   `json:"media_url,omitempty" db:"media_url"`
	MediaWidth      *int      `json:"media_width,omitempty" db:"media_width"`
	MediaHeight     *int      `json:"media_height,omitempty" db:"media_height"`
	ThumbnailURL    *string   `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	ThumbnailWidth  *int      `json:"thumbnail_width,omitempty" db:"thumbnail_width"`
	ThumbnailHeight *int      `json:"thumbnail_height,omitempty" db:"thumbnail_height"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
