package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

const videoColumns = `id, url, title, transcribe, summary, audio_path, audio_status,
	transcribe_status, created_at, updated_at, description, channel_title, published_at,
	view_count, like_count, comment_count`

type Store struct {
	db *sql.DB
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
				"PRAGMA cache_size = -8000",    // 8MB
				"PRAGMA mmap_size = 268435456", // 256MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	dbPath := filepath.Join(dataDir, "vidsum.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Create(ctx context.Context, v *domain.Video) error {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO videos (url, title, transcribe, summary, audio_path, audio_status,
			transcribe_status, created_at, updated_at, description, channel_title, published_at,
			view_count, like_count, comment_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.URL, v.Title, v.Transcript, v.Summary, v.AudioPath, string(v.AudioStatus),
		string(v.TranscribeStatus), v.CreatedAt, v.UpdatedAt, v.Description, v.ChannelTitle,
		nullTime(v.PublishedAt), nullInt(v.ViewCount), nullInt(v.LikeCount), nullInt(v.CommentCount),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("video %s: %w", v.URL, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("insert video: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	v.ID = id
	return nil
}

func (s *Store) Get(ctx context.Context, id int64) (*domain.Video, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = ?`, id)
	return scanVideo(row)
}

func (s *Store) GetByURL(ctx context.Context, url string) (*domain.Video, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE url = ?`, url)
	return scanVideo(row)
}

func (s *Store) List(ctx context.Context) ([]*domain.Video, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []*domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *Store) UpdateAudio(ctx context.Context, id int64, status domain.AssetStatus, path string) error {
	return s.exec(ctx, id, `UPDATE videos SET audio_status = ?, audio_path = ?, updated_at = ? WHERE id = ?`,
		string(status), path, time.Now().UTC(), id)
}

func (s *Store) UpdateAudioStatus(ctx context.Context, id int64, status domain.AssetStatus) error {
	return s.exec(ctx, id, `UPDATE videos SET audio_status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
}

func (s *Store) UpdateTranscript(ctx context.Context, id int64, status domain.AssetStatus, transcript string) error {
	return s.exec(ctx, id, `UPDATE videos SET transcribe_status = ?, transcribe = ?, updated_at = ? WHERE id = ?`,
		string(status), transcript, time.Now().UTC(), id)
}

func (s *Store) UpdateTranscribeStatus(ctx context.Context, id int64, status domain.AssetStatus) error {
	return s.exec(ctx, id, `UPDATE videos SET transcribe_status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
}

func (s *Store) UpdateSummary(ctx context.Context, id int64, summary string) error {
	return s.exec(ctx, id, `UPDATE videos SET summary = ?, updated_at = ? WHERE id = ?`,
		summary, time.Now().UTC(), id)
}

// exec runs a single-row UPDATE and maps "no row" to domain.ErrNotFound.
func (s *Store) exec(ctx context.Context, id int64, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update video %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update video %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVideo(row scanner) (*domain.Video, error) {
	var (
		v                         domain.Video
		audioStatus, transcribeSt string
		publishedAt               sql.NullTime
		views, likes, comments    sql.NullInt64
	)
	err := row.Scan(&v.ID, &v.URL, &v.Title, &v.Transcript, &v.Summary, &v.AudioPath,
		&audioStatus, &transcribeSt, &v.CreatedAt, &v.UpdatedAt, &v.Description, &v.ChannelTitle,
		&publishedAt, &views, &likes, &comments)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	v.AudioStatus = domain.AssetStatus(audioStatus)
	v.TranscribeStatus = domain.AssetStatus(transcribeSt)
	if publishedAt.Valid {
		t := publishedAt.Time.UTC()
		v.PublishedAt = &t
	}
	v.ViewCount = intPtr(views)
	v.LikeCount = intPtr(likes)
	v.CommentCount = intPtr(comments)
	return &v, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullInt(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

func intPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

var _ port.VideoStore = (*Store)(nil)
