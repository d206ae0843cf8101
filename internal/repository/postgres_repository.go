package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/scheduler"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) SnapshotRepository {
	return &postgresRepository{db: db}
}

// EnsureSchema creates the snapshot tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			handle TEXT NOT NULL,
			platform TEXT NOT NULL,
			avatar_url TEXT NOT NULL DEFAULT '',
			connected BOOLEAN NOT NULL DEFAULT TRUE,
			audience INTEGER NOT NULL DEFAULT 0,
			engagement_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			best_post_time TEXT NOT NULL DEFAULT '',
			categories TEXT[] NOT NULL DEFAULT '{}',
			position INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS scheduled_posts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			account_ids TEXT[] NOT NULL DEFAULT '{}',
			category TEXT NOT NULL,
			topic TEXT NOT NULL,
			scheduled_at TIMESTAMPTZ NOT NULL,
			caption TEXT NOT NULL,
			hashtags TEXT[] NOT NULL DEFAULT '{}',
			image_prompt TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			projected_reach INTEGER NOT NULL DEFAULT 0,
			projected_clicks INTEGER NOT NULL DEFAULT 0,
			projected_saves INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS brand_voice (
			id INTEGER PRIMARY KEY,
			voice TEXT NOT NULL
		);
	`
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		slog.Error("creating snapshot schema", "error", err)
	}
	return err
}

func (r *postgresRepository) Load(ctx context.Context) (*scheduler.State, bool, error) {
	var state scheduler.State

	var found bool
	err := r.db.QueryRowContext(ctx, `SELECT voice FROM brand_voice WHERE id = 1`).Scan(&state.BrandVoice)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		slog.Info(err.Error())
		return nil, false, err
	default:
		found = true
	}

	accounts, err := r.loadAccounts(ctx)
	if err != nil {
		return nil, false, err
	}
	state.Accounts = accounts

	posts, err := r.loadPosts(ctx)
	if err != nil {
		return nil, false, err
	}
	state.Posts = posts

	if !found && len(accounts) == 0 && len(posts) == 0 {
		return nil, false, nil
	}
	return &state, true, nil
}

func (r *postgresRepository) loadAccounts(ctx context.Context) ([]models.Account, error) {
	query := `
		SELECT id, name, handle, platform, avatar_url, connected,
			audience, engagement_rate, best_post_time, categories
		FROM accounts ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		err := rows.Scan(&a.ID, &a.Name, &a.Handle, &a.Platform, &a.AvatarURL,
			&a.Connected, &a.Audience, &a.EngagementRate, &a.BestPostTime,
			pq.Array(&a.Categories))
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *postgresRepository) loadPosts(ctx context.Context) ([]models.ScheduledPost, error) {
	query := `
		SELECT id, title, account_ids, category, topic, scheduled_at, caption,
			hashtags, image_prompt, status,
			projected_reach, projected_clicks, projected_saves
		FROM scheduled_posts ORDER BY scheduled_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []models.ScheduledPost
	for rows.Next() {
		var p models.ScheduledPost
		err := rows.Scan(&p.ID, &p.Title, pq.Array(&p.AccountIDs), &p.Category,
			&p.Topic, &p.ScheduledAt, &p.Caption, pq.Array(&p.Hashtags),
			&p.ImagePrompt, &p.Status,
			&p.Performance.ProjectedReach, &p.Performance.ProjectedClicks,
			&p.Performance.ProjectedSaves)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Save replaces the stored snapshot wholesale in one transaction. The store
// notifies with full state, not deltas, so a replace keeps both sides simple.
func (r *postgresRepository) Save(ctx context.Context, state *scheduler.State) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		slog.Info(err.Error())
		return err
	}
	insertAccount := `
		INSERT INTO accounts(
			id, name, handle, platform, avatar_url, connected,
			audience, engagement_rate, best_post_time, categories, position
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for i, a := range state.Accounts {
		_, err := tx.ExecContext(ctx, insertAccount,
			a.ID, a.Name, a.Handle, a.Platform, a.AvatarURL, a.Connected,
			a.Audience, a.EngagementRate, a.BestPostTime, pq.Array(a.Categories), i)
		if err != nil {
			slog.Info(err.Error())
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM scheduled_posts`); err != nil {
		slog.Info(err.Error())
		return err
	}
	insertPost := `
		INSERT INTO scheduled_posts(
			id, title, account_ids, category, topic, scheduled_at, caption,
			hashtags, image_prompt, status,
			projected_reach, projected_clicks, projected_saves
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, p := range state.Posts {
		_, err := tx.ExecContext(ctx, insertPost,
			p.ID, p.Title, pq.Array(p.AccountIDs), p.Category, p.Topic,
			p.ScheduledAt, p.Caption, pq.Array(p.Hashtags), p.ImagePrompt,
			p.Status, p.Performance.ProjectedReach, p.Performance.ProjectedClicks,
			p.Performance.ProjectedSaves)
		if err != nil {
			slog.Info(err.Error())
			return err
		}
	}

	upsertVoice := `
		INSERT INTO brand_voice(id, voice) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET voice = EXCLUDED.voice`
	if _, err := tx.ExecContext(ctx, upsertVoice, state.BrandVoice); err != nil {
		slog.Info(err.Error())
		return err
	}

	if err := tx.Commit(); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
