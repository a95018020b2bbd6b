package response

var (
	ErrInvalidGalleryID = ErrorResponse{
		Status:  "error",
		Error:   "invalid_gallery_id",
		Details: "Gallery id must be a valid UUID",
	}

	ErrGalleryNotFound = ErrorResponse{
		Status:  "error",
		Error:   "gallery_not_found",
		Details: "No gallery with this id",
	}

	ErrChannelGalleryNotFound = ErrorResponse{
		Status:  "error",
		Error:   "gallery_not_found",
		Details: "No gallery is bound to this channel",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
