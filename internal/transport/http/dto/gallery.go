package dto

import (
	"time"

	"github.com/ILikePizza555/galleria/internal/domain/models"

	"github.com/google/uuid"
)

type GalleryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ChannelID string    `json:"channel_id"`
	CreatedAt time.Time `json:"created_at"`
}

type GalleryPostResponse struct {
	ID              uuid.UUID `json:"id"`
	GalleryID       uuid.UUID `json:"gallery_id"`
	MessageID       string    `json:"message_id"`
	SourceURL       *string   `json:"source_url,omitempty"`
	MediaURL        *string   `json:"media_url,omitempty"`
	MediaWidth      *int      `json:"media_width,omitempty"`
	MediaHeight     *int      `json:"media_height,omitempty"`
	ThumbnailURL    *string   `json:"thumbnail_url,omitempty"`
	ThumbnailWidth  *int      `json:"thumbnail_width,omitempty"`
	ThumbnailHeight *int      `json:"thumbnail_height,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToGalleryResponse(g models.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:        g.ID,
		Name:      g.Name,
		ChannelID: g.ChannelID,
		CreatedAt: g.CreatedAt,
	}
}

func ToGalleryPostResponses(posts []models.GalleryPost) []GalleryPostResponse {
	out := make([]GalleryPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, GalleryPostResponse{
			ID:              p.ID,
			GalleryID:       p.GalleryID,
			MessageID:       p.MessageID,
			SourceURL:       p.SourceURL,
			MediaURL:        p.MediaURL,
			MediaWidth:      p.MediaWidth,
			MediaHeight:     p.MediaHeight,
			ThumbnailURL:    p.ThumbnailURL,
			ThumbnailWidth:  p.ThumbnailWidth,
			ThumbnailHeight: p.ThumbnailHeight,
			CreatedAt:       p.CreatedAt,
		})
	}
	return out
}
