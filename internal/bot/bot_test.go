package bot

import (
	"testing"

	"github.com/ILikePizza555/galleria/internal/domain/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAttachments(t *testing.T) {
	t.Run("maps fields and skips nil entries", func(t *testing.T) {
		got := mapAttachments([]*discordgo.MessageAttachment{
			{
				ContentType: "image/png",
				URL:         "https://cdn.example.com/a.png",
				Width:       640,
				Height:      480,
			},
			nil,
			{
				ContentType: "video/mp4",
				URL:         "https://cdn.example.com/clip.mp4",
			},
		})

		require.Len(t, got, 2)
		assert.Equal(t, models.Attachment{
			ContentType: "image/png",
			URL:         "https://cdn.example.com/a.png",
			Width:       640,
			Height:      480,
		}, got[0])
		assert.Equal(t, "video/mp4", got[1].ContentType)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, mapAttachments(nil))
		assert.Nil(t, mapAttachments([]*discordgo.MessageAttachment{}))
	})
}

func TestMapEmbeds(t *testing.T) {
	t.Run("maps image and thumbnail", func(t *testing.T) {
		got := mapEmbeds([]*discordgo.MessageEmbed{
			{
				URL: "https://example.com/page",
				Image: &discordgo.MessageEmbedImage{
					URL:    "https://cdn.example.com/full.jpg",
					Width:  1024,
					Height: 768,
				},
				Thumbnail: &discordgo.MessageEmbedThumbnail{
					URL:    "https://cdn.example.com/thumb.jpg",
					Width:  120,
					Height: 90,
				},
			},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "https://example.com/page", got[0].URL)
		require.NotNil(t, got[0].Image)
		assert.Equal(t, "https://cdn.example.com/full.jpg", got[0].Image.URL)
		assert.Equal(t, 1024, got[0].Image.Width)
		require.NotNil(t, got[0].Thumbnail)
		assert.Equal(t, 90, got[0].Thumbnail.Height)
	})

	t.Run("bare embed keeps nil media", func(t *testing.T) {
		got := mapEmbeds([]*discordgo.MessageEmbed{{URL: "https://example.com"}})

		require.Len(t, got, 1)
		assert.Nil(t, got[0].Image)
		assert.Nil(t, got[0].Thumbnail)
	})

	t.Run("nil entries are skipped", func(t *testing.T) {
		got := mapEmbeds([]*discordgo.MessageEmbed{nil, {URL: "https://example.com"}})

		require.Len(t, got, 1)
	})
}
