package repositories

import (
	"github.com/Musabek03/Instagram-clone/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPosts(offset, limit int) ([]models.Post, int64, error)
	GetFeedPosts(authorIDs []uint, offset, limit int) ([]models.Post, int64, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	GetPostsCountByAuthor(authorID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts retrieves a reverse-chronological page of all posts
func (r *PostgresPostRepository) GetPosts(offset, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

// GetFeedPosts retrieves a reverse-chronological page of posts authored by
// the given set of users. An empty author set yields an empty page.
func (r *PostgresPostRepository) GetFeedPosts(authorIDs []uint, offset, limit int) ([]models.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, 0, nil
	}

	var posts []models.Post
	var total int64

	if err := r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post together with its comments and like edges.
// Notifications referencing the post are left in place; their post reference
// is nullable and dangling-safe.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// GetPostsCountByAuthor retrieves the number of posts owned by a user
func (r *PostgresPostRepository) GetPostsCountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
