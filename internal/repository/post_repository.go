package repository

import (
	"context"

	"gorm.io/gorm"

	"scribe/internal/model"
)

// PostFilter holds optional list predicates. A nil field applies no constraint.
type PostFilter struct {
	Title        *string
	Body         *string
	UserID       *uint
	WithComments *bool
}

func (f PostFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Title != nil && *f.Title != "" {
		q = q.Where("title LIKE ?", "%"+*f.Title+"%")
	}
	if f.Body != nil && *f.Body != "" {
		q = q.Where("body LIKE ?", "%"+*f.Body+"%")
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.WithComments != nil {
		if *f.WithComments {
			q = q.Where("EXISTS (SELECT 1 FROM comments WHERE comments.post_id = posts.id)")
		} else {
			q = q.Where("NOT EXISTS (SELECT 1 FROM comments WHERE comments.post_id = posts.id)")
		}
	}
	return q
}

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, filter PostFilter, page Page) ([]model.Post, int64, error)
	ListByUser(ctx context.Context, userID uint, page Page) ([]model.Post, int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

// FindByID loads a post with its author's identity projection.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Preload("User", userIdentity).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List applies the filter, counts the full match set, then fetches one page
// ordered newest-first with id as the tie-break.
func (r *postRepository) List(ctx context.Context, filter PostFilter, page Page) ([]model.Post, int64, error) {
	page = page.Normalize()
	q := filter.apply(r.db.WithContext(ctx).Model(&model.Post{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := q.Preload("User", userIdentity).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, page Page) ([]model.Post, int64, error) {
	page = page.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Post{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	if err := q.Order("id").Offset(page.Offset()).Limit(page.Limit()).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
