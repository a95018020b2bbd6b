package storage

import "errors"

var (
	ErrGalleryExists   = errors.New("gallery already exists for channel")
	ErrGalleryNotFound = errors.New("gallery not found")
	ErrPostNotFound    = errors.New("gallery post not found")
)
