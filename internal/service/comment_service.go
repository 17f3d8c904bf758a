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

// CommentService exposes comment domain operations.
type CommentService interface {
	Create(ctx context.Context, userID, postID uint, body string) (*model.Comment, error)
	Get(ctx context.Context, id uint) (*model.Comment, error)
	Update(ctx context.Context, comment *model.Comment, body string) (*model.Comment, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page repository.Page) ([]model.Comment, int64, error)
	ListByUser(ctx context.Context, userID uint, page repository.Page) ([]model.Comment, int64, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

// NewCommentService builds a CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) CommentService {
	return &commentService{comments: comments, posts: posts, users: users}
}

// Create stores a comment for the authenticated author. Referential rules
// run after the author id has been stamped from the token.
func (s *commentService) Create(ctx context.Context, userID, postID uint, body string) (*model.Comment, error) {
	ve := &apperrors.ValidationError{}

	userExists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}
	if !userExists {
		ve.Add("user_id", validation.MsgSelectedInvalid("user_id"))
	}

	postExists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if !postExists {
		ve.Add("post_id", validation.MsgSelectedInvalid("post_id"))
	}

	if !ve.Empty() {
		return nil, ve
	}

	comment := &model.Comment{
		UserID: userID,
		PostID: postID,
		Body:   body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Get(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, comment *model.Comment, body string) (*model.Comment, error) {
	comment.Body = body
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id uint) error {
	return s.comments.Delete(ctx, id)
}

func (s *commentService) List(ctx context.Context, page repository.Page) ([]model.Comment, int64, error) {
	return s.comments.List(ctx, page)
}

func (s *commentService) ListByUser(ctx context.Context, userID uint, page repository.Page) ([]model.Comment, int64, error) {
	return s.comments.ListByUser(ctx, userID, page)
}
