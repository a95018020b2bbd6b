package app

import (
	"context"
	"log/slog"

	httpapp "github.com/ILikePizza555/galleria/internal/app/http"
	"github.com/ILikePizza555/galleria/internal/bot"
	"github.com/ILikePizza555/galleria/internal/config"
	"github.com/ILikePizza555/galleria/internal/repository"
	galleryservice "github.com/ILikePizza555/galleria/internal/services/gallery_service"
	ingestservice "github.com/ILikePizza555/galleria/internal/services/ingest_service"
	"github.com/ILikePizza555/galleria/internal/storage/postgresql"
	httprouters "github.com/ILikePizza555/galleria/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Bot        *bot.Bot

	storage *postgresql.Storage
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := storage.Bootstrap(ctx); err != nil {
		storage.Stop()
		return nil, err
	}

	repo := repository.NewRepository(storage.Pool(), cfg.GalleryCacheTTL)

	discordBot, err := bot.New(log, cfg.Discord.Token, cfg.Discord.CommandPrefix)
	if err != nil {
		storage.Stop()
		return nil, err
	}

	galleryService := galleryservice.NewGalleryService(log, repo.Gallery, repo.Post, discordBot)
	ingestService := ingestservice.NewIngestService(log, repo.Gallery, repo.Post)

	discordBot.Bind(ingestService, galleryService)

	routers := httprouters.NewRouter(log, galleryService)
	httpServer := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: httpServer,
		Bot:        discordBot,
		storage:    storage,
	}, nil
}

func (a *App) Stop() {
	a.storage.Stop()
}
