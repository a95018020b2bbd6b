package repository

import (
	"context"
	"time"

	"github.com/ILikePizza555/galleria/internal/domain/models"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// CachedGalleryRepo fronts a GalleryRepository with an in-process cache keyed
// by channel id. Galleries are never mutated after creation, so only positive
// lookups are cached; a miss always falls through to storage so a gallery
// created moments ago becomes visible immediately.
type CachedGalleryRepo struct {
	inner GalleryRepository
	cache *gocache.Cache
}

func NewCachedGalleryRepository(inner GalleryRepository, ttl time.Duration) *CachedGalleryRepo {
	return &CachedGalleryRepo{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (r *CachedGalleryRepo) CreateGallery(ctx context.Context, name, channelID string) (models.Gallery, error) {
	gallery, err := r.inner.CreateGallery(ctx, name, channelID)
	if err != nil {
		return models.Gallery{}, err
	}

	r.cache.SetDefault(channelID, gallery)
	return gallery, nil
}

func (r *CachedGalleryRepo) FindByChannelID(ctx context.Context, channelID string) (models.Gallery, error) {
	if cached, ok := r.cache.Get(channelID); ok {
		return cached.(models.Gallery), nil
	}

	gallery, err := r.inner.FindByChannelID(ctx, channelID)
	if err != nil {
		return models.Gallery{}, err
	}

	r.cache.SetDefault(channelID, gallery)
	return gallery, nil
}

func (r *CachedGalleryRepo) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	return r.inner.GetGalleryByID(ctx, id)
}
