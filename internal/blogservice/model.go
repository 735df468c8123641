package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

var (
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// blogViewQuery selects blogs joined with their author. $1 is the id of the
// viewing user, 0 for anonymous callers, and drives is_favorited.
const blogViewQuery = `
	SELECT b.id, b.title, b.content, b.summary, b.user_id, b.created_at, b.updated_at, u.username,
		EXISTS (SELECT 1 FROM favorites f WHERE f.blog_id = b.id AND f.user_id = $1)
	FROM blogs b
	JOIN users u ON b.user_id = u.id`

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (title, content, summary, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, blog.Title, blog.Content, blog.Summary, blog.UserID).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case common.ForeignKeyViolation(err, "blogs_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) getView(ctx context.Context, id, viewerID int) (*BlogView, error) {
	query := blogViewQuery + `
	WHERE b.id = $2`

	views, err := m.queryViews(ctx, query, viewerID, id)
	if err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return nil, common.ErrRecordNotFound
	}

	return &views[0], nil
}

// getOwner returns the id of the user who wrote the blog.
func (m *BlogModel) getOwner(ctx context.Context, id int) (int, error) {
	var owner int

	err := m.db.QueryRowContext(ctx, `SELECT user_id FROM blogs WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, common.ErrRecordNotFound
		default:
			return 0, err
		}
	}

	return owner, nil
}

func (m *BlogModel) update(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, summary = $3, updated_at = now()
		WHERE id = $4
		RETURNING user_id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, blog.Title, blog.Content, blog.Summary, blog.ID).Scan(&blog.UserID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) delete(ctx context.Context, id int) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

func (m *BlogModel) list(ctx context.Context, viewerID int) ([]BlogView, error) {
	query := blogViewQuery + `
	ORDER BY b.created_at DESC, b.id DESC`

	return m.queryViews(ctx, query, viewerID)
}

func (m *BlogModel) listByUser(ctx context.Context, userID, viewerID int) ([]BlogView, error) {
	query := blogViewQuery + `
	WHERE b.user_id = $2
	ORDER BY b.created_at DESC, b.id DESC`

	return m.queryViews(ctx, query, viewerID, userID)
}

func (m *BlogModel) queryViews(ctx context.Context, query string, args ...any) ([]BlogView, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []BlogView{}
	for rows.Next() {
		var v BlogView
		err := rows.Scan(&v.ID, &v.Title, &v.Content, &v.Summary, &v.UserID, &v.CreatedAt, &v.UpdatedAt, &v.Username, &v.IsFavorited)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
