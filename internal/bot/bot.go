package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ILikePizza555/galleria/internal/domain/models"
	"github.com/ILikePizza555/galleria/internal/lib/logger/sl"
	ingest "github.com/ILikePizza555/galleria/internal/services/ingest_service"
	"github.com/ILikePizza555/galleria/internal/storage"

	"github.com/bwmarrin/discordgo"
)

const (
	replyPong          = "Pong!"
	replyGalleryExists = "A gallery for this channel already exists."
	replyGenericError  = "An error occurred while running the command."
)

// IngestService receives normalized message lifecycle events.
type IngestService interface {
	HandleMessageCreated(ctx context.Context, msg ingest.MessageCreated) error
	HandleMessageEdited(ctx context.Context, msg ingest.MessageEdited) error
}

// AdmissionService creates a gallery for a channel on user command.
type AdmissionService interface {
	CreateGallery(ctx context.Context, channelID string) (models.Gallery, error)
}

type Bot struct {
	log       *slog.Logger
	session   *discordgo.Session
	prefix    string
	ingest    IngestService
	admission AdmissionService
	removers  []func()
}

func New(log *slog.Logger, token, prefix string) (*Bot, error) {
	const op = "bot.New"

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return &Bot{
		log:     log.With(slog.String("component", "bot")),
		session: session,
		prefix:  prefix,
	}, nil
}

// Bind attaches the services the bot dispatches to. Kept separate from New so
// the admission service can be built with the bot as its channel metadata
// provider first.
func (b *Bot) Bind(ingest IngestService, admission AdmissionService) {
	b.ingest = ingest
	b.admission = admission
}

// ChannelName fetches the channel's display name from Discord.
func (b *Bot) ChannelName(ctx context.Context, channelID string) (string, error) {
	const op = "bot.Bot.ChannelName"

	channel, err := b.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return channel.Name, nil
}

func (b *Bot) Start(ctx context.Context) error {
	const op = "bot.Bot.Start"

	b.removers = append(b.removers,
		b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
			b.onMessageCreate(ctx, s, m)
		}),
		b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageUpdate) {
			b.onMessageUpdate(ctx, m)
		}),
		b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
			b.log.Info("connected", slog.String("user", r.User.Username))
		}),
	)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (b *Bot) Stop() error {
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil

	return b.session.Close()
}

// onMessageCreate routes a new message: a prefix command runs inline and gets
// a reply; anything else is ingested on its own goroutine, with failures
// logged and never surfaced to the channel.
func (b *Bot) onMessageCreate(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author != nil && m.Author.Bot {
		return
	}
	if ctx.Err() != nil {
		return
	}

	switch m.Content {
	case b.prefix + "ping":
		b.reply(m.ChannelID, replyPong)
		return
	case b.prefix + "gallery":
		b.handleGalleryCommand(ctx, m)
		return
	}

	event := ingest.MessageCreated{
		ID:          m.ID,
		ChannelID:   m.ChannelID,
		Attachments: mapAttachments(m.Attachments),
		Embeds:      mapEmbeds(m.Embeds),
	}

	go func() {
		if err := b.ingest.HandleMessageCreated(ctx, event); err != nil {
			b.log.Error("failed to handle new message",
				slog.String("message_id", event.ID),
				sl.Err(err),
			)
		}
	}()
}

// onMessageUpdate dispatches the edit with whatever lists the gateway sent;
// absent lists map to empty, which clears the message's posts.
func (b *Bot) onMessageUpdate(ctx context.Context, m *discordgo.MessageUpdate) {
	if m.Author != nil && m.Author.Bot {
		return
	}
	if ctx.Err() != nil {
		return
	}

	event := ingest.MessageEdited{
		ID:          m.ID,
		ChannelID:   m.ChannelID,
		Attachments: mapAttachments(m.Attachments),
		Embeds:      mapEmbeds(m.Embeds),
	}

	go func() {
		if err := b.ingest.HandleMessageEdited(ctx, event); err != nil {
			b.log.Error("failed to handle message edit",
				slog.String("message_id", event.ID),
				sl.Err(err),
			)
		}
	}()
}

func (b *Bot) handleGalleryCommand(ctx context.Context, m *discordgo.MessageCreate) {
	log := b.log.With(slog.String("channel_id", m.ChannelID))

	gallery, err := b.admission.CreateGallery(ctx, m.ChannelID)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryExists) {
			b.reply(m.ChannelID, replyGalleryExists)
			return
		}

		log.Error("failed to create gallery", sl.Err(err))
		b.reply(m.ChannelID, replyGenericError)
		return
	}

	log.Info("gallery created", slog.String("gallery_id", gallery.ID.String()))
	b.reply(m.ChannelID, fmt.Sprintf("Created gallery %q for this channel.", gallery.Name))
}

// reply sends a message to the channel and logs any delivery error.
func (b *Bot) reply(channelID, message string) {
	if _, err := b.session.ChannelMessageSend(channelID, message); err != nil {
		b.log.Error("failed to send message", slog.String("channel_id", channelID), sl.Err(err))
	}
}

func mapAttachments(attachments []*discordgo.MessageAttachment) []models.Attachment {
	if len(attachments) == 0 {
		return nil
	}

	out := make([]models.Attachment, 0, len(attachments))
	for _, a := range attachments {
		if a == nil {
			continue
		}
		out = append(out, models.Attachment{
			ContentType: a.ContentType,
			URL:         a.URL,
			Width:       a.Width,
			Height:      a.Height,
		})
	}
	return out
}

func mapEmbeds(embeds []*discordgo.MessageEmbed) []models.Embed {
	if len(embeds) == 0 {
		return nil
	}

	out := make([]models.Embed, 0, len(embeds))
	for _, e := range embeds {
		if e == nil {
			continue
		}

		embed := models.Embed{URL: e.URL}
		if e.Image != nil {
			embed.Image = &models.EmbedImage{
				URL:    e.Image.URL,
				Width:  e.Image.Width,
				Height: e.Image.Height,
			}
		}
		if e.Thumbnail != nil {
			embed.Thumbnail = &models.EmbedImage{
				URL:    e.Thumbnail.URL,
				Width:  e.Thumbnail.Width,
				Height: e.Thumbnail.Height,
			}
		}
		out = append(out, embed)
	}
	return out
}
