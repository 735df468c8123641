package adminservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

const topUsersLimit = 5

func newAdminModel(db *sql.DB) *AdminModel {
	return &AdminModel{db: db}
}

func (m *AdminModel) listUsers(ctx context.Context) ([]UserView, error) {
	query := `
		SELECT u.id, u.username, u.email, u.role, u.created_at, COUNT(b.id)
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC, u.id DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []UserView{}
	for rows.Next() {
		var u UserView
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.BlogCount)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// deleteUser removes a regular user and, through the schema, their blogs and favorites.
// The role is read under a row lock in the same transaction as the delete.
func (m *AdminModel) deleteUser(ctx context.Context, id int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var role userservice.Role

	err = tx.QueryRowContext(ctx, `SELECT role FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&role)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrRecordNotFound
		default:
			return err
		}
	}

	if role == userservice.RoleAdmin {
		return ErrCannotDeleteAdmin
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (m *AdminModel) stats(ctx context.Context, since time.Time) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM blogs),
			(SELECT COUNT(*) FROM users WHERE role = $1),
			(SELECT COUNT(*) FROM blogs WHERE created_at >= $2)`

	var s Stats

	err := m.db.QueryRowContext(ctx, query, userservice.RoleAdmin, since).Scan(&s.TotalUsers, &s.TotalBlogs, &s.TotalAdmins, &s.RecentBlogs)
	if err != nil {
		return nil, err
	}

	s.TopUsers, err = m.topUsers(ctx, topUsersLimit)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// topUsers ranks regular users by number of blogs, breaking ties by id.
// Users without blogs are included.
func (m *AdminModel) topUsers(ctx context.Context, limit int) ([]TopUser, error) {
	query := `
		SELECT u.id, u.username, COUNT(b.id) AS blog_count
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		WHERE u.role = $1
		GROUP BY u.id
		ORDER BY blog_count DESC, u.id ASC
		LIMIT $2`

	rows, err := m.db.QueryContext(ctx, query, userservice.RoleUser, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []TopUser{}
	for rows.Next() {
		var u TopUser
		err := rows.Scan(&u.ID, &u.Username, &u.BlogCount)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
