package blogservice

import (
	"context"
	"errors"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

var (
	ErrAlreadyFavorited = errors.New("blog is already in favorites")
	ErrFavoriteNotFound = errors.New("blog is not in favorites")
)

func (m *BlogModel) insertFavorite(ctx context.Context, userID, blogID int) error {
	query := `
		INSERT INTO favorites (user_id, blog_id)
		VALUES ($1, $2)`

	_, err := m.db.ExecContext(ctx, query, userID, blogID)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "favorites_user_id_blog_id_key"):
			return ErrAlreadyFavorited
		case common.ForeignKeyViolation(err, "favorites_blog_id_fkey"):
			return common.ErrRecordNotFound
		case common.ForeignKeyViolation(err, "favorites_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) deleteFavorite(ctx context.Context, userID, blogID int) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1 AND blog_id = $2`, userID, blogID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (m *BlogModel) favoriteExists(ctx context.Context, userID, blogID int) (bool, error) {
	var exists bool
	err := m.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND blog_id = $2)`, userID, blogID).Scan(&exists)
	return exists, err
}

// listFavorites returns the user's favorite blogs, most recently favorited first.
func (m *BlogModel) listFavorites(ctx context.Context, userID int) ([]BlogView, error) {
	query := `
		SELECT b.id, b.title, b.content, b.summary, b.user_id, b.created_at, b.updated_at, u.username, TRUE
		FROM favorites f
		JOIN blogs b ON f.blog_id = b.id
		JOIN users u ON b.user_id = u.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, f.id DESC`

	return m.queryViews(ctx, query, userID)
}
