package models

// ReferenceKind tells whether a media reference came from a direct file
// attachment or from a link-preview embed.
type ReferenceKind string

const (
	ReferenceKindAttachment ReferenceKind = "attachment"
	ReferenceKindEmbed      ReferenceKind = "embed"
)

// Attachment is a platform-neutral view of a message file attachment.
type Attachment struct {
	ContentType string
	URL         string
	Width       int
	Height      int
}

// EmbedImage is the image or thumbnail part of a link-preview embed.
// A nil pointer means the field was absent on the wire.
type EmbedImage struct {
	URL    string
	Width  int
	Height int
}

// Embed is a platform-neutral view of a link-preview embed.
type Embed struct {
	URL       string
	Image     *EmbedImage
	Thumbnail *EmbedImage
}

// MediaReference is the normalized extractor output. It only exists between
// extraction and persistence and is never stored as its own entity.
// A reference always carries at least a source URL or a media URL.
type MediaReference struct {
	Kind            ReferenceKind
	SourceURL       *string
	MediaURL        *string
	MediaWidth      *int
	MediaHeight     *int
	ThumbnailURL    *string
	ThumbnailWidth  *int
	ThumbnailHeight *int
}
