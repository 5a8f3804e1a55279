package repositories

import (
	"newsroom-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetVisible(user *models.User, params models.ListParams) ([]models.Article, int64, error)
	GetSubscribed(readerID uint, params models.ListParams) ([]models.Article, int64, error)
	UpdateStatusIfPending(id uint, status models.ContentStatus, approvedByID *uint) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Publisher").
		Preload("ApprovedBy").
		First(&article, id).Error
	return &article, err
}

// GetVisible runs the role-scoped list query. Editors get everything,
// journalists their own rows, readers only approved rows from
// publishers or journalists they subscribe to. Evaluated fresh on
// every call so subscription and approval changes show up immediately.
func (r *articleRepository) GetVisible(user *models.User, params models.ListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Publisher")

	switch user.Role {
	case models.RoleEditor:
		// unrestricted
	case models.RoleJournalist:
		query = query.Where("author_id = ?", user.ID)
	default:
		query = query.Where("status = ?", models.StatusApproved).
			Where(`publisher_id IN (SELECT publisher_id FROM publisher_subscriptions WHERE reader_id = ?)
				OR author_id IN (SELECT journalist_id FROM journalist_subscriptions WHERE reader_id = ?)`,
				user.ID, user.ID)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&articles).Error
	return articles, total, err
}

// GetSubscribed is the reader-only subscription feed, the same filter
// GetVisible applies for readers.
func (r *articleRepository) GetSubscribed(readerID uint, params models.ListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Publisher").
		Where("status = ?", models.StatusApproved).
		Where(`publisher_id IN (SELECT publisher_id FROM publisher_subscriptions WHERE reader_id = ?)
			OR author_id IN (SELECT journalist_id FROM journalist_subscriptions WHERE reader_id = ?)`,
			readerID, readerID)

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&articles).Error
	return articles, total, err
}

// UpdateStatusIfPending applies the transition only when the row is
// still pending. RowsAffected tells the caller whether it won; the
// loser of a concurrent approve/reject sees false and no second
// transition is applied.
func (r *articleRepository) UpdateStatusIfPending(id uint, status models.ContentStatus, approvedByID *uint) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":         status,
			"approved_by_id": approvedByID,
		})
	return res.RowsAffected > 0, res.Error
}
