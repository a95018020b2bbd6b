package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ILikePizza555/galleria/internal/domain/models"
	"github.com/ILikePizza555/galleria/internal/lib/logger/sl"
	"github.com/ILikePizza555/galleria/internal/repository"
	"github.com/ILikePizza555/galleria/internal/storage"

	"github.com/google/uuid"
)

// ErrChannelFetch marks a failure to retrieve channel metadata from the
// messaging platform during admission.
var ErrChannelFetch = errors.New("failed to fetch channel metadata")

// ChannelInfoProvider resolves channel metadata from the messaging platform.
type ChannelInfoProvider interface {
	ChannelName(ctx context.Context, channelID string) (string, error)
}

type GalleryService struct {
	log      *slog.Logger
	repo     repository.GalleryRepository
	posts    repository.PostRepository
	channels ChannelInfoProvider
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, posts repository.PostRepository, channels ChannelInfoProvider) *GalleryService {
	return &GalleryService{
		log:      log,
		repo:     repo,
		posts:    posts,
		channels: channels,
	}
}

// CreateGallery admits a channel into the gallery set. The lookup is only a
// precondition check; when two admissions race past it, the unique constraint
// rejects the loser and that rejection surfaces as storage.ErrGalleryExists
// exactly like the pre-check hit.
func (s *GalleryService) CreateGallery(ctx context.Context, channelID string) (models.Gallery, error) {
	const op = "service.GalleryService.CreateGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("channel_id", channelID),
	)

	log.Info("creating gallery")

	_, err := s.repo.FindByChannelID(ctx, channelID)
	if err == nil {
		log.Warn("gallery already exists")
		return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryExists)
	}
	if !errors.Is(err, storage.ErrGalleryNotFound) {
		log.Error("failed to check existing gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	name, err := s.channels.ChannelName(ctx, channelID)
	if err != nil {
		log.Error("failed to fetch channel metadata", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w: %w", op, ErrChannelFetch, err)
	}

	gallery, err := s.repo.CreateGallery(ctx, name, channelID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryExists) {
			log.Warn("gallery created concurrently")
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryExists)
		}
		log.Error("failed to create gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created successfully", slog.String("id", gallery.ID.String()))
	return gallery, nil
}

// GetGalleryPosts returns the ordered posts of a gallery.
// storage.ErrGalleryNotFound is returned for an unknown gallery id.
func (s *GalleryService) GetGalleryPosts(ctx context.Context, galleryID uuid.UUID) ([]models.GalleryPost, error) {
	const op = "service.GalleryService.GetGalleryPosts"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	if _, err := s.repo.GetGalleryByID(ctx, galleryID); err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		log.Error("failed to get gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	posts, err := s.posts.ListByGalleryID(ctx, galleryID)
	if err != nil {
		log.Error("failed to list gallery posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

// GetGalleryByChannelID returns the gallery bound to a channel, if any.
func (s *GalleryService) GetGalleryByChannelID(ctx context.Context, channelID string) (models.Gallery, error) {
	const op = "service.GalleryService.GetGalleryByChannelID"

	gallery, err := s.repo.FindByChannelID(ctx, channelID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		s.log.Error("failed to find gallery by channel", slog.String("op", op), sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}
