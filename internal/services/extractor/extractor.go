package extractor

import (
	"math"
	"strings"

	"github.com/ILikePizza555/galleria/internal/domain/models"
)

const imageContentTypePrefix = "image/"

// Extract turns a message's attachment and embed lists into normalized media
// references, attachments first, preserving input order. It performs no I/O
// and never fails: disqualified inputs are dropped, not reported.
func Extract(attachments []models.Attachment, embeds []models.Embed) []models.MediaReference {
	refs := make([]models.MediaReference, 0, len(attachments)+len(embeds))

	for _, a := range attachments {
		if ref, ok := fromAttachment(a); ok {
			refs = append(refs, ref)
		}
	}

	for _, e := range embeds {
		if ref, ok := fromEmbed(e); ok {
			refs = append(refs, ref)
		}
	}

	return refs
}

func fromAttachment(a models.Attachment) (models.MediaReference, bool) {
	if !strings.HasPrefix(a.ContentType, imageContentTypePrefix) {
		return models.MediaReference{}, false
	}
	if a.URL == "" {
		return models.MediaReference{}, false
	}

	return models.MediaReference{
		Kind:        models.ReferenceKindAttachment,
		MediaURL:    optionalURL(a.URL),
		MediaWidth:  optionalDimension(a.Width),
		MediaHeight: optionalDimension(a.Height),
	}, true
}

func fromEmbed(e models.Embed) (models.MediaReference, bool) {
	if e.Image == nil && e.Thumbnail == nil {
		return models.MediaReference{}, false
	}

	ref := models.MediaReference{
		Kind:      models.ReferenceKindEmbed,
		SourceURL: optionalURL(e.URL),
	}

	if e.Image != nil {
		ref.MediaURL = optionalURL(e.Image.URL)
		ref.MediaWidth = optionalDimension(e.Image.Width)
		ref.MediaHeight = optionalDimension(e.Image.Height)
	}

	if e.Thumbnail != nil {
		ref.ThumbnailURL = optionalURL(e.Thumbnail.URL)
		ref.ThumbnailWidth = optionalDimension(e.Thumbnail.Width)
		ref.ThumbnailHeight = optionalDimension(e.Thumbnail.Height)
	}

	// A post must carry at least a source link or a primary media URL;
	// thumbnail-only embeds without a link have nothing to show in a gallery.
	if ref.SourceURL == nil && ref.MediaURL == nil {
		return models.MediaReference{}, false
	}

	return ref, true
}

func optionalURL(url string) *string {
	if url == "" {
		return nil
	}
	return &url
}

// optionalDimension drops values that cannot be stored in an INTEGER column.
func optionalDimension(v int) *int {
	if v <= 0 || v > math.MaxInt32 {
		return nil
	}
	return &v
}
