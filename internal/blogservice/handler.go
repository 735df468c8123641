package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
	"github.com/AslanEminovi/codex-blogsite/internal/userservice"
)

func NewBlogService(db *sql.DB, events *common.EventPublisher) *BlogService {
	return &BlogService{m: newBlogModel(db), events: events}
}

func viewerID(p *userservice.Principal) int {
	if p.IsAnonymous() {
		return 0
	}
	return p.UserID
}

// CreateBlog stores a new blog written by the principal and returns it joined with the author.
func (s *BlogService) CreateBlog(ctx context.Context, p *userservice.Principal, in BlogInput) (*BlogView, error) {
	err := userservice.Authorize(p, userservice.ActionCreateBlog, 0)
	if err != nil {
		return nil, err
	}

	// content must still be present once script elements are gone
	in.Content = sanitizeMarkdown(in.Content)

	v := common.NewValidator()
	validateBlogInput(v, in)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:   in.Title,
		Content: in.Content,
		Summary: in.Summary,
		UserID:  p.UserID,
	}

	err = s.m.insert(ctx, &blog)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserForeignKey):
			// the token outlived its user
			return nil, common.ErrUnauthenticated
		default:
			return nil, err
		}
	}

	s.events.Publish(ctx, common.Event{Type: common.BlogCreatedKey, ActorID: p.UserID, UserID: blog.UserID, BlogID: blog.ID})

	return s.m.getView(ctx, blog.ID, p.UserID)
}

// GetBlog returns a single blog personalized for the principal, who may be anonymous.
func (s *BlogService) GetBlog(ctx context.Context, p *userservice.Principal, id int) (*BlogView, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getView(ctx, id, viewerID(p))
}

// UpdateBlog overwrites title, content and summary. Only the author or an admin may update a blog.
func (s *BlogService) UpdateBlog(ctx context.Context, p *userservice.Principal, id int, in BlogInput) (*BlogView, error) {
	if p.IsAnonymous() {
		return nil, common.ErrUnauthenticated
	}

	in.Content = sanitizeMarkdown(in.Content)

	v := common.NewValidator()
	validateBlogInput(v, in)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	owner, err := s.m.getOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	err = userservice.Authorize(p, userservice.ActionUpdateBlog, owner)
	if err != nil {
		return nil, err
	}

	blog := Blog{
		ID:      id,
		Title:   in.Title,
		Content: in.Content,
		Summary: in.Summary,
	}

	err = s.m.update(ctx, &blog)
	if err != nil {
		return nil, err
	}

	return s.m.getView(ctx, id, p.UserID)
}

// DeleteBlog removes a blog and, through the schema, every favorite of it.
// Only the author or an admin may delete a blog.
func (s *BlogService) DeleteBlog(ctx context.Context, p *userservice.Principal, id int) error {
	if p.IsAnonymous() {
		return common.ErrUnauthenticated
	}

	owner, err := s.m.getOwner(ctx, id)
	if err != nil {
		return err
	}

	err = userservice.Authorize(p, userservice.ActionDeleteBlog, owner)
	if err != nil {
		return err
	}

	err = s.m.delete(ctx, id)
	if err != nil {
		return err
	}

	s.events.Publish(ctx, common.Event{Type: common.BlogDeletedKey, ActorID: p.UserID, UserID: owner, BlogID: id})

	return nil
}

// ListBlogs returns every blog, newest first.
func (s *BlogService) ListBlogs(ctx context.Context, p *userservice.Principal) ([]BlogView, error) {
	return s.m.list(ctx, viewerID(p))
}

// ListBlogsByUser returns the blogs written by userID. An unknown user has no blogs.
func (s *BlogService) ListBlogsByUser(ctx context.Context, p *userservice.Principal, userID int) ([]BlogView, error) {
	return s.m.listByUser(ctx, userID, viewerID(p))
}

func (s *BlogService) ListMyBlogs(ctx context.Context, p *userservice.Principal) ([]BlogView, error) {
	if p.IsAnonymous() {
		return nil, common.ErrUnauthenticated
	}

	return s.m.listByUser(ctx, p.UserID, p.UserID)
}

func (s *BlogService) AddFavorite(ctx context.Context, p *userservice.Principal, blogID int) error {
	err := userservice.Authorize(p, userservice.ActionFavorite, 0)
	if err != nil {
		return err
	}

	err = s.m.insertFavorite(ctx, p.UserID, blogID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserForeignKey):
			return common.ErrUnauthenticated
		default:
			return err
		}
	}

	return nil
}

func (s *BlogService) RemoveFavorite(ctx context.Context, p *userservice.Principal, blogID int) error {
	err := userservice.Authorize(p, userservice.ActionFavorite, 0)
	if err != nil {
		return err
	}

	return s.m.deleteFavorite(ctx, p.UserID, blogID)
}

// IsFavorited reports whether the principal has favorited the blog. Anonymous callers never have.
func (s *BlogService) IsFavorited(ctx context.Context, p *userservice.Principal, blogID int) (bool, error) {
	if p.IsAnonymous() {
		return false, nil
	}

	return s.m.favoriteExists(ctx, p.UserID, blogID)
}

func (s *BlogService) ListMyFavorites(ctx context.Context, p *userservice.Principal) ([]BlogView, error) {
	err := userservice.Authorize(p, userservice.ActionFavorite, 0)
	if err != nil {
		return nil, err
	}

	return s.m.listFavorites(ctx, p.UserID)
}
