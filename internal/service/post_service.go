package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "scribe/internal/errors"
	"scribe/internal/model"
	"scribe/internal/repository"
	"scribe/internal/validation"
)

// PostService exposes post domain operations.
type PostService interface {
	Create(ctx context.Context, userID uint, title, body string) (*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Update(ctx context.Context, post *model.Post, title, body string) (*model.Post, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter repository.PostFilter, page repository.Page) ([]model.Post, int64, error)
	ListByUser(ctx context.Context, userID uint, page repository.Page) ([]model.Post, int64, error)
	Comments(ctx context.Context, postID uint, page repository.Page) ([]model.Comment, int64, error)
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	users    repository.UserRepository
}

// NewPostService builds a PostService.
func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, comments: comments, users: users}
}

// Create stores a post for the authenticated author. The author id comes
// from the token, never from the payload, but it is still checked against
// the users table in case the account was deleted after the token was
// issued.
func (s *postService) Create(ctx context.Context, userID uint, title, body string) (*model.Post, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}
	if !exists {
		return nil, apperrors.NewValidationError("user_id", validation.MsgSelectedInvalid("user_id"))
	}

	post := &model.Post{
		UserID: userID,
		Title:  title,
		Body:   body,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	// Reload to pick up the author identity projection for serialization.
	return s.Get(ctx, post.ID)
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Update changes title and body only; any other payload fields are ignored.
func (s *postService) Update(ctx context.Context, post *model.Post, title, body string) (*model.Post, error) {
	post.Title = title
	post.Body = body
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return s.Get(ctx, post.ID)
}

func (s *postService) Delete(ctx context.Context, id uint) error {
	return s.posts.Delete(ctx, id)
}

// List validates the author filter against the users table before handing
// the filter to the query builder; the builder itself never re-checks it.
func (s *postService) List(ctx context.Context, filter repository.PostFilter, page repository.Page) ([]model.Post, int64, error) {
	if filter.UserID != nil {
		exists, err := s.users.Exists(ctx, *filter.UserID)
		if err != nil {
			return nil, 0, fmt.Errorf("check author filter: %w", err)
		}
		if !exists {
			return nil, 0, apperrors.NewValidationError("user_id", validation.MsgSelectedInvalid("user_id"))
		}
	}
	return s.posts.List(ctx, filter, page)
}

func (s *postService) ListByUser(ctx context.Context, userID uint, page repository.Page) ([]model.Post, int64, error) {
	return s.posts.ListByUser(ctx, userID, page)
}

func (s *postService) Comments(ctx context.Context, postID uint, page repository.Page) ([]model.Comment, int64, error) {
	return s.comments.ListByPost(ctx, postID, page)
}
