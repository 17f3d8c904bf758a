package repository

import (
	"context"

	"gorm.io/gorm"

	"scribe/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	List(ctx context.Context, page Page) ([]model.Comment, int64, error)
	ListByPost(ctx context.Context, postID uint, page Page) ([]model.Comment, int64, error)
	ListByUser(ctx context.Context, userID uint, page Page) ([]model.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context, page Page) ([]model.Comment, int64, error) {
	page = page.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Comment{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	if err := q.Order("id").Offset(page.Offset()).Limit(page.Limit()).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// ListByPost loads a page of a post's comments with each author's identity
// projection attached.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint, page Page) ([]model.Comment, int64, error) {
	page = page.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := q.Preload("User", userIdentity).
		Order("id").Offset(page.Offset()).Limit(page.Limit()).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) ListByUser(ctx context.Context, userID uint, page Page) ([]model.Comment, int64, error) {
	page = page.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Comment{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	if err := q.Order("id").Offset(page.Offset()).Limit(page.Limit()).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
