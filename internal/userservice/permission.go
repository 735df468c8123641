package userservice

import "github.com/AslanEminovi/codex-blogsite/internal/common"

type Action string

const (
	ActionReadBlog   Action = "blog:read"
	ActionCreateBlog Action = "blog:create"
	ActionUpdateBlog Action = "blog:update"
	ActionDeleteBlog Action = "blog:delete"
	ActionFavorite   Action = "favorite:write"
	ActionModerate   Action = "admin:moderate"
)

// Authorize decides whether p may perform action on a resource owned by
// ownerID (0 when the action targets no owned resource). It returns
// common.ErrUnauthenticated for anonymous callers of protected actions and
// common.ErrForbidden when the caller is known but lacks the right.
func Authorize(p *Principal, action Action, ownerID int) error {
	if action == ActionReadBlog {
		return nil
	}

	if p.IsAnonymous() {
		return common.ErrUnauthenticated
	}

	switch action {
	case ActionCreateBlog, ActionFavorite:
		return nil
	case ActionUpdateBlog, ActionDeleteBlog:
		if p.IsAdmin() || p.UserID == ownerID {
			return nil
		}
	case ActionModerate:
		if p.IsAdmin() {
			return nil
		}
	}

	return common.ErrForbidden
}
