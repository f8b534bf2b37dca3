package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Post statuses.
const (
	StatusPending = "pending"
	StatusPosted  = "posted"
	StatusFailed  = "failed"
)

// ErrPostNotFound is returned when a post ID does not exist.
var ErrPostNotFound = errors.New("db: post not found")

// Post is one row of posting history.
type Post struct {
	ID        int64
	ImagePath string
	Style     string
	Palette   string
	Caption   string
	Hashtags  []string
	Status    string
	MediaID   string
	Error     string
	CreatedAt time.Time
	PostedAt  *time.Time
}

// PostsRepository reads and writes the posts table.
type PostsRepository struct {
	db *sql.DB
}

// NewPostsRepository creates a repository on an open connection.
func NewPostsRepository(db *sql.DB) *PostsRepository {
	return &PostsRepository{db: db}
}

const postColumns = "id, image_path, style, palette, caption, hashtags, status, media_id, error, created_at, posted_at"

// Create inserts a pending post and returns its ID.
func (r *PostsRepository) Create(post *Post) (int64, error) {
	if post.Status == "" {
		post.Status = StatusPending
	}
	result, err := r.db.Exec(
		`INSERT INTO posts (image_path, style, palette, caption, hashtags, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		post.ImagePath, post.Style, post.Palette, post.Caption,
		strings.Join(post.Hashtags, " "), post.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("db: insert post: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("db: read insert id: %w", err)
	}
	post.ID = id
	return id, nil
}

// MarkPosted records a successful upload.
func (r *PostsRepository) MarkPosted(id int64, mediaID string) error {
	result, err := r.db.Exec(
		`UPDATE posts SET status = ?, media_id = ?, error = '', posted_at = CURRENT_TIMESTAMP WHERE id = ?`,
		StatusPosted, mediaID, id,
	)
	if err != nil {
		return fmt.Errorf("db: mark posted: %w", err)
	}
	return checkAffected(result, id)
}

// MarkFailed records a failed upload with its error message.
func (r *PostsRepository) MarkFailed(id int64, cause string) error {
	result, err := r.db.Exec(
		`UPDATE posts SET status = ?, error = ? WHERE id = ?`,
		StatusFailed, cause, id,
	)
	if err != nil {
		return fmt.Errorf("db: mark failed: %w", err)
	}
	return checkAffected(result, id)
}

// Get returns one post by ID.
func (r *PostsRepository) Get(id int64) (*Post, error) {
	row := r.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	return post, err
}

// Recent returns the newest posts, most recent first.
func (r *PostsRepository) Recent(limit int) ([]*Post, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(
		`SELECT `+postColumns+` FROM posts ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("db: query recent posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ByStatus returns posts with the given status, most recent first.
func (r *PostsRepository) ByStatus(status string, limit int) ([]*Post, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(
		`SELECT `+postColumns+` FROM posts WHERE status = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		status, limit)
	if err != nil {
		return nil, fmt.Errorf("db: query posts by status: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// CountByStyle returns how many posts exist per style.
func (r *PostsRepository) CountByStyle() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT style, COUNT(*) FROM posts GROUP BY style`)
	if err != nil {
		return nil, fmt.Errorf("db: count posts by style: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var style string
		var n int
		if err := rows.Scan(&style, &n); err != nil {
			return nil, fmt.Errorf("db: scan style count: %w", err)
		}
		counts[style] = n
	}
	return counts, rows.Err()
}

// LastPostedAt returns the time of the most recent successful post, or
// the zero time when nothing was posted yet.
func (r *PostsRepository) LastPostedAt() (time.Time, error) {
	var posted sql.NullTime
	err := r.db.QueryRow(
		`SELECT MAX(posted_at) FROM posts WHERE status = ?`, StatusPosted).Scan(&posted)
	if err != nil {
		return time.Time{}, fmt.Errorf("db: query last posted time: %w", err)
	}
	if !posted.Valid {
		return time.Time{}, nil
	}
	return posted.Time, nil
}

// scanner covers sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (*Post, error) {
	var post Post
	var hashtags string
	var postedAt sql.NullTime
	err := s.Scan(&post.ID, &post.ImagePath, &post.Style, &post.Palette,
		&post.Caption, &hashtags, &post.Status, &post.MediaID, &post.Error,
		&post.CreatedAt, &postedAt)
	if err != nil {
		return nil, err
	}
	if hashtags != "" {
		post.Hashtags = strings.Fields(hashtags)
	}
	if postedAt.Valid {
		post.PostedAt = &postedAt.Time
	}
	return &post, nil
}

func collectPosts(rows *sql.Rows) ([]*Post, error) {
	var posts []*Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db: scan post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func checkAffected(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db: read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrPostNotFound, id)
	}
	return nil
}
