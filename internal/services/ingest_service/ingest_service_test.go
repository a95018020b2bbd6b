package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/ILikePizza555/galleria/internal/domain/models"
	services "github.com/ILikePizza555/galleria/internal/services/ingest_service"
	"github.com/ILikePizza555/galleria/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) CreateGallery(ctx context.Context, name, channelID string) (models.Gallery, error) {
	args := m.Called(ctx, name, channelID)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) FindByChannelID(ctx context.Context, channelID string) (models.Gallery, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Gallery), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) InsertPosts(ctx context.Context, galleryID uuid.UUID, messageID string, refs []models.MediaReference) ([]models.GalleryPost, error) {
	args := m.Called(ctx, galleryID, messageID, refs)
	return args.Get(0).([]models.GalleryPost), args.Error(1)
}

func (m *MockPostRepository) ReplacePosts(ctx context.Context, galleryID uuid.UUID, messageID string, refs []models.MediaReference) ([]models.GalleryPost, error) {
	args := m.Called(ctx, galleryID, messageID, refs)
	return args.Get(0).([]models.GalleryPost), args.Error(1)
}

func (m *MockPostRepository) ListByGalleryID(ctx context.Context, galleryID uuid.UUID) ([]models.GalleryPost, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).([]models.GalleryPost), args.Error(1)
}

func (m *MockPostRepository) ListByMessageID(ctx context.Context, messageID string) ([]models.GalleryPost, error) {
	args := m.Called(ctx, messageID)
	return args.Get(0).([]models.GalleryPost), args.Error(1)
}

func newTestService(galleries *MockGalleryRepository, posts *MockPostRepository) *services.IngestService {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	return services.NewIngestService(log, galleries, posts)
}

func TestHandleMessageCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("empty payload short-circuits before storage", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		err := svc.HandleMessageCreated(ctx, services.MessageCreated{
			ID:        "100",
			ChannelID: "200",
		})

		require.NoError(t, err)
		galleries.AssertNotCalled(t, "FindByChannelID", mock.Anything, mock.Anything)
		posts.AssertNotCalled(t, "InsertPosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("channel without gallery produces zero writes", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		galleries.On("FindByChannelID", ctx, "200").
			Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()

		err := svc.HandleMessageCreated(ctx, services.MessageCreated{
			ID:        "100",
			ChannelID: "200",
			Attachments: []models.Attachment{
				{ContentType: "image/png", URL: "https://cdn.example/a.png"},
			},
		})

		require.NoError(t, err)
		galleries.AssertExpectations(t)
		posts.AssertNotCalled(t, "InsertPosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("single image attachment becomes a post in the bound gallery", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		gallery := models.Gallery{ID: uuid.New(), Name: "art", ChannelID: "200"}
		galleries.On("FindByChannelID", ctx, "200").Return(gallery, nil).Once()

		posts.On("InsertPosts", ctx, gallery.ID, "100", mock.MatchedBy(func(refs []models.MediaReference) bool {
			return len(refs) == 1 &&
				refs[0].MediaURL != nil && *refs[0].MediaURL == "u1" &&
				refs[0].Kind == models.ReferenceKindAttachment
		})).Return([]models.GalleryPost{{ID: uuid.New(), GalleryID: gallery.ID, MessageID: "100"}}, nil).Once()

		err := svc.HandleMessageCreated(ctx, services.MessageCreated{
			ID:        "100",
			ChannelID: "200",
			Attachments: []models.Attachment{
				{ContentType: "image/png", URL: "u1"},
			},
		})

		require.NoError(t, err)
		galleries.AssertExpectations(t)
		posts.AssertExpectations(t)
	})

	t.Run("non-image attachments yield no references and no insert", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		galleries.On("FindByChannelID", ctx, "200").
			Return(models.Gallery{ID: uuid.New(), ChannelID: "200"}, nil).Once()

		err := svc.HandleMessageCreated(ctx, services.MessageCreated{
			ID:        "100",
			ChannelID: "200",
			Attachments: []models.Attachment{
				{ContentType: "video/mp4", URL: "https://cdn.example/v.mp4"},
			},
		})

		require.NoError(t, err)
		posts.AssertNotCalled(t, "InsertPosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		storageErr := errors.New("connection reset")
		galleries.On("FindByChannelID", ctx, "200").
			Return(models.Gallery{}, storageErr).Once()

		err := svc.HandleMessageCreated(ctx, services.MessageCreated{
			ID:        "100",
			ChannelID: "200",
			Embeds: []models.Embed{
				{Image: &models.EmbedImage{URL: "https://cdn.example/i.png"}},
			},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestHandleMessageEdited(t *testing.T) {
	ctx := context.Background()

	t.Run("edit replaces the post set for the message", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		gallery := models.Gallery{ID: uuid.New(), ChannelID: "200"}
		galleries.On("FindByChannelID", ctx, "200").Return(gallery, nil).Once()

		posts.On("ReplacePosts", ctx, gallery.ID, "100", mock.MatchedBy(func(refs []models.MediaReference) bool {
			return len(refs) == 2
		})).Return([]models.GalleryPost{
			{ID: uuid.New(), GalleryID: gallery.ID, MessageID: "100"},
			{ID: uuid.New(), GalleryID: gallery.ID, MessageID: "100"},
		}, nil).Once()

		err := svc.HandleMessageEdited(ctx, services.MessageEdited{
			ID:        "100",
			ChannelID: "200",
			Attachments: []models.Attachment{
				{ContentType: "image/png", URL: "https://cdn.example/a.png"},
			},
			Embeds: []models.Embed{
				{Image: &models.EmbedImage{URL: "https://cdn.example/i.png"}},
			},
		})

		require.NoError(t, err)
		galleries.AssertExpectations(t)
		posts.AssertExpectations(t)
	})

	t.Run("edit that strips all media still replaces with an empty set", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		gallery := models.Gallery{ID: uuid.New(), ChannelID: "200"}
		galleries.On("FindByChannelID", ctx, "200").Return(gallery, nil).Once()

		posts.On("ReplacePosts", ctx, gallery.ID, "100", mock.MatchedBy(func(refs []models.MediaReference) bool {
			return len(refs) == 0
		})).Return([]models.GalleryPost(nil), nil).Once()

		err := svc.HandleMessageEdited(ctx, services.MessageEdited{
			ID:        "100",
			ChannelID: "200",
		})

		require.NoError(t, err)
		posts.AssertExpectations(t)
	})

	t.Run("edit outside monitored channels is a no-op", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		galleries.On("FindByChannelID", ctx, "999").
			Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()

		err := svc.HandleMessageEdited(ctx, services.MessageEdited{
			ID:        "100",
			ChannelID: "999",
			Attachments: []models.Attachment{
				{ContentType: "image/png", URL: "https://cdn.example/a.png"},
			},
		})

		require.NoError(t, err)
		posts.AssertNotCalled(t, "ReplacePosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replace failure propagates", func(t *testing.T) {
		galleries := new(MockGalleryRepository)
		posts := new(MockPostRepository)
		svc := newTestService(galleries, posts)

		gallery := models.Gallery{ID: uuid.New(), ChannelID: "200"}
		galleries.On("FindByChannelID", ctx, "200").Return(gallery, nil).Once()

		txErr := errors.New("transaction aborted")
		posts.On("ReplacePosts", ctx, gallery.ID, "100", mock.Anything).
			Return([]models.GalleryPost(nil), txErr).Once()

		err := svc.HandleMessageEdited(ctx, services.MessageEdited{
			ID:        "100",
			ChannelID: "200",
			Embeds: []models.Embed{
				{Image: &models.EmbedImage{URL: "https://cdn.example/i.png"}},
			},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, txErr)
	})
}
