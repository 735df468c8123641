package adminservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AslanEminovi/codex-blogsite/internal/blogservice"
	"github.com/AslanEminovi/codex-blogsite/internal/common"
	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

var (
	ErrSelfDeletion      = errors.New("cannot delete your own admin account")
	ErrCannotDeleteAdmin = errors.New("cannot delete another admin user")
)

// recentWindow is how far back GetStats counts blogs as recent.
const recentWindow = 7 * 24 * time.Hour

func NewAdminService(db *sql.DB, blogs *blogservice.BlogService, events *common.EventPublisher) *AdminService {
	return &AdminService{
		m:      newAdminModel(db),
		blogs:  blogs,
		events: events,
	}
}

func moderate(p *userservice.Principal) error {
	return userservice.Authorize(p, userservice.ActionModerate, 0)
}

func (s *AdminService) ListUsers(ctx context.Context, p *userservice.Principal) ([]UserView, error) {
	if err := moderate(p); err != nil {
		return nil, err
	}

	return s.m.listUsers(ctx)
}

// ListAllBlogs returns every blog without personalization.
func (s *AdminService) ListAllBlogs(ctx context.Context, p *userservice.Principal) ([]blogservice.BlogView, error) {
	if err := moderate(p); err != nil {
		return nil, err
	}

	return s.blogs.ListBlogs(ctx, userservice.AnonymousPrincipal)
}

func (s *AdminService) DeleteAnyBlog(ctx context.Context, p *userservice.Principal, blogID int) error {
	if err := moderate(p); err != nil {
		return err
	}

	return s.blogs.DeleteBlog(ctx, p, blogID)
}

// DeleteAnyUser removes a regular user with everything they own. An admin can
// delete neither their own account nor another admin's.
func (s *AdminService) DeleteAnyUser(ctx context.Context, p *userservice.Principal, userID int) error {
	if err := moderate(p); err != nil {
		return err
	}

	if userID == p.UserID {
		return ErrSelfDeletion
	}

	err := s.m.deleteUser(ctx, userID)
	if err != nil {
		return err
	}

	s.events.Publish(ctx, common.Event{Type: common.UserDeletedKey, ActorID: p.UserID, UserID: userID})

	return nil
}

func (s *AdminService) GetStats(ctx context.Context, p *userservice.Principal) (*Stats, error) {
	if err := moderate(p); err != nil {
		return nil, err
	}

	return s.m.stats(ctx, time.Now().UTC().Add(-recentWindow))
}
