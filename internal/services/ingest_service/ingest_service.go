package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ILikePizza555/galleria/internal/domain/models"
	"github.com/ILikePizza555/galleria/internal/lib/logger/sl"
	"github.com/ILikePizza555/galleria/internal/metrics"
	"github.com/ILikePizza555/galleria/internal/repository"
	"github.com/ILikePizza555/galleria/internal/services/extractor"
	"github.com/ILikePizza555/galleria/internal/storage"
)

// MessageCreated is a new message delivered by the messaging platform.
type MessageCreated struct {
	ID          string
	ChannelID   string
	Attachments []models.Attachment
	Embeds      []models.Embed
}

// MessageEdited is an edit to an existing message. The platform may omit
// unchanged fields; absent lists are handled as empty, not as "unchanged".
type MessageEdited struct {
	ID          string
	ChannelID   string
	Attachments []models.Attachment
	Embeds      []models.Embed
}

type IngestService struct {
	log       *slog.Logger
	galleries repository.GalleryRepository
	posts     repository.PostRepository
}

func NewIngestService(log *slog.Logger, galleries repository.GalleryRepository, posts repository.PostRepository) *IngestService {
	return &IngestService{
		log:       log,
		galleries: galleries,
		posts:     posts,
	}
}

// HandleMessageCreated inserts posts for every media reference the message
// carries. Messages outside monitored channels and messages without
// qualifying media are ignored without touching storage.
func (s *IngestService) HandleMessageCreated(ctx context.Context, msg MessageCreated) error {
	const op = "service.IngestService.HandleMessageCreated"
	log := s.log.With(
		slog.String("op", op),
		slog.String("message_id", msg.ID),
		slog.String("channel_id", msg.ChannelID),
	)

	if len(msg.Attachments) == 0 && len(msg.Embeds) == 0 {
		metrics.IngestEventsTotal.WithLabelValues("create", "skipped").Inc()
		return nil
	}

	gallery, err := s.galleries.FindByChannelID(ctx, msg.ChannelID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			log.Debug("no gallery bound to channel")
			metrics.IngestEventsTotal.WithLabelValues("create", "no_gallery").Inc()
			return nil
		}
		metrics.IngestEventsTotal.WithLabelValues("create", "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	refs := extractor.Extract(msg.Attachments, msg.Embeds)
	if len(refs) == 0 {
		log.Debug("message has no qualifying media")
		metrics.IngestEventsTotal.WithLabelValues("create", "skipped").Inc()
		return nil
	}

	posts, err := s.posts.InsertPosts(ctx, gallery.ID, msg.ID, refs)
	if err != nil {
		log.Error("failed to insert gallery posts", sl.Err(err))
		metrics.IngestEventsTotal.WithLabelValues("create", "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery posts created", slog.Int("count", len(posts)))
	metrics.IngestEventsTotal.WithLabelValues("create", "applied").Inc()
	metrics.PostsWrittenTotal.WithLabelValues("insert").Add(float64(len(posts)))
	return nil
}

// HandleMessageEdited replaces the whole post set for the edited message in
// one transaction. The delete-then-insert runs even when the fresh reference
// list is empty, which removes posts for a message whose media was stripped.
// Rapid repeated edits of the same message resolve as last-applied-wins;
// event order is not reconstructed.
func (s *IngestService) HandleMessageEdited(ctx context.Context, msg MessageEdited) error {
	const op = "service.IngestService.HandleMessageEdited"
	log := s.log.With(
		slog.String("op", op),
		slog.String("message_id", msg.ID),
		slog.String("channel_id", msg.ChannelID),
	)

	refs := extractor.Extract(msg.Attachments, msg.Embeds)

	gallery, err := s.galleries.FindByChannelID(ctx, msg.ChannelID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			log.Debug("no gallery bound to channel")
			metrics.IngestEventsTotal.WithLabelValues("edit", "no_gallery").Inc()
			return nil
		}
		metrics.IngestEventsTotal.WithLabelValues("edit", "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	posts, err := s.posts.ReplacePosts(ctx, gallery.ID, msg.ID, refs)
	if err != nil {
		log.Error("failed to replace gallery posts", sl.Err(err))
		metrics.IngestEventsTotal.WithLabelValues("edit", "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery posts replaced", slog.Int("count", len(posts)))
	metrics.IngestEventsTotal.WithLabelValues("edit", "applied").Inc()
	metrics.PostsWrittenTotal.WithLabelValues("replace").Add(float64(len(posts)))
	return nil
}
