package repository

import (
	"context"
	"fmt"

	"github.com/ILikePizza555/galleria/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const postColumns = "id, gallery_id, message_id, source_url, media_url, media_width, media_height, thumbnail_url, thumbnail_width, thumbnail_height, created_at"

type PostRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPostRepository(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the insert path
// can run standalone or inside the replace transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

func (r *PostRepo) InsertPosts(ctx context.Context, galleryID uuid.UUID, messageID string, refs []models.MediaReference) ([]models.GalleryPost, error) {
	const op = "repository.PostRepo.InsertPosts"

	posts, err := r.insertPosts(ctx, r.db, galleryID, messageID, refs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

func (r *PostRepo) ReplacePosts(ctx context.Context, galleryID uuid.UUID, messageID string, refs []models.MediaReference) ([]models.GalleryPost, error) {
	const op = "repository.PostRepo.ReplacePosts"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	delQuery, delArgs, err := r.sb.Delete("gallery_posts").
		Where(sq.Eq{"message_id": messageID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var posts []models.GalleryPost
	if len(refs) > 0 {
		posts, err = r.insertPosts(ctx, tx, galleryID, messageID, refs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return posts, nil
}

func (r *PostRepo) insertPosts(ctx context.Context, q querier, galleryID uuid.UUID, messageID string, refs []models.MediaReference) ([]models.GalleryPost, error) {
	builder := r.sb.Insert("gallery_posts").
		Columns(
			"gallery_id",
			"message_id",
			"source_url",
			"media_url",
			"media_width",
			"media_height",
			"thumbnail_url",
			"thumbnail_width",
			"thumbnail_height",
		)

	for _, ref := range refs {
		builder = builder.Values(
			galleryID,
			messageID,
			ref.SourceURL,
			ref.MediaURL,
			ref.MediaWidth,
			ref.MediaHeight,
			ref.ThumbnailURL,
			ref.ThumbnailWidth,
			ref.ThumbnailHeight,
		)
	}

	query, args, err := builder.
		Suffix("RETURNING " + postColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepo) ListByGalleryID(ctx context.Context, galleryID uuid.UUID) ([]models.GalleryPost, error) {
	const op = "repository.PostRepo.ListByGalleryID"

	query, args, err := r.sb.Select(postColumns).
		From("gallery_posts").
		Where(sq.Eq{"gallery_id": galleryID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

func (r *PostRepo) ListByMessageID(ctx context.Context, messageID string) ([]models.GalleryPost, error) {
	const op = "repository.PostRepo.ListByMessageID"

	query, args, err := r.sb.Select(postColumns).
		From("gallery_posts").
		Where(sq.Eq{"message_id": messageID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

func scanPosts(rows pgx.Rows) ([]models.GalleryPost, error) {
	var posts []models.GalleryPost
	for rows.Next() {
		var p models.GalleryPost
		err := rows.Scan(
			&p.ID,
			&p.GalleryID,
			&p.MessageID,
			&p.SourceURL,
			&p.MediaURL,
			&p.MediaWidth,
			&p.MediaHeight,
			&p.ThumbnailURL,
			&p.ThumbnailWidth,
			&p.ThumbnailHeight,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("row scanning failed: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return posts, nil
}
