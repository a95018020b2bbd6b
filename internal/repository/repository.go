package repository

import (
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	Gallery GalleryRepository
	Post    PostRepository
}

func NewRepository(db *pgxpool.Pool, galleryCacheTTL time.Duration) *Repository {
	gallery := GalleryRepository(NewGalleryRepository(db))
	if galleryCacheTTL > 0 {
		gallery = NewCachedGalleryRepository(gallery, galleryCacheTTL)
	}

	return &Repository{
		Gallery: gallery,
		Post:    NewPostRepository(db),
	}
}
