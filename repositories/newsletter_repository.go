package repositories

import (
	"newsroom-api/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(newsletter *models.Newsletter) error
	GetByID(id uint) (*models.Newsletter, error)
	GetVisible(user *models.User, params models.ListParams) ([]models.Newsletter, int64, error)
	GetSubscribed(readerID uint, params models.ListParams) ([]models.Newsletter, int64, error)
	UpdateStatusIfPending(id uint, status models.ContentStatus, approvedByID *uint) (bool, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(newsletter *models.Newsletter) error {
	return r.db.Create(newsletter).Error
}

func (r *newsletterRepository) GetByID(id uint) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.Preload("Author").
		Preload("Publisher").
		Preload("ApprovedBy").
		First(&newsletter, id).Error
	return &newsletter, err
}

func (r *newsletterRepository) GetVisible(user *models.User, params models.ListParams) ([]models.Newsletter, int64, error) {
	var newsletters []models.Newsletter
	var total int64

	query := r.db.Model(&models.Newsletter{}).Preload("Author").Preload("Publisher")

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
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&newsletters).Error
	return newsletters, total, err
}

func (r *newsletterRepository) GetSubscribed(readerID uint, params models.ListParams) ([]models.Newsletter, int64, error) {
	var newsletters []models.Newsletter
	var total int64

	query := r.db.Model(&models.Newsletter{}).Preload("Author").Preload("Publisher").
		Where("status = ?", models.StatusApproved).
		Where(`publisher_id IN (SELECT publisher_id FROM publisher_subscriptions WHERE reader_id = ?)
			OR author_id IN (SELECT journalist_id FROM journalist_subscriptions WHERE reader_id = ?)`,
			readerID, readerID)

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&newsletters).Error
	return newsletters, total, err
}

func (r *newsletterRepository) UpdateStatusIfPending(id uint, status models.ContentStatus, approvedByID *uint) (bool, error) {
	res := r.db.Model(&models.Newsletter{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":         status,
			"approved_by_id": approvedByID,
		})
	return res.RowsAffected > 0, res.Error
}
