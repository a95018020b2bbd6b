package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ILikePizza555/galleria/internal/domain/models"
	"github.com/ILikePizza555/galleria/internal/lib/logger/sl"
	"github.com/ILikePizza555/galleria/internal/storage"
	"github.com/ILikePizza555/galleria/internal/transport/http/dto"
	"github.com/ILikePizza555/galleria/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GalleryService is the read path the rendering collaborator consumes.
type GalleryService interface {
	GetGalleryPosts(ctx context.Context, galleryID uuid.UUID) ([]models.GalleryPost, error)
	GetGalleryByChannelID(ctx context.Context, channelID string) (models.Gallery, error)
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
}

func NewRouter(log *slog.Logger, galleryService GalleryService) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
	}
}

// GetGalleryPosts returns the ordered posts of one gallery.
func (r *Routers) GetGalleryPosts(c echo.Context) error {
	const op = "http.routers.GetGalleryPosts"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("gallery_id"))
	if err != nil {
		log.Warn("invalid gallery id", slog.String("gallery_id", c.Param("gallery_id")))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidGalleryID)
	}

	posts, err := r.GalleryService.GetGalleryPosts(c.Request().Context(), galleryID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
		}

		log.Error("failed to get gallery posts", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ToGalleryPostResponses(posts)))
}

// GetChannelGallery returns the gallery bound to a channel, if any.
func (r *Routers) GetChannelGallery(c echo.Context) error {
	const op = "http.routers.GetChannelGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	channelID := c.Param("channel_id")

	gallery, err := r.GalleryService.GetGalleryByChannelID(c.Request().Context(), channelID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrChannelGalleryNotFound)
		}

		log.Error("failed to get channel gallery", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ToGalleryResponse(gallery)))
}

func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
