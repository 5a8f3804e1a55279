package repositories

import (
	"newsroom-api/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(publisher *models.Publisher) error
	GetByID(id uint) (*models.Publisher, error)
	GetList(params models.ListParams) ([]models.Publisher, int64, error)
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(publisher *models.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *publisherRepository) GetByID(id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Preload("Journalists").First(&publisher, id).Error
	return &publisher, err
}

func (r *publisherRepository) GetList(params models.ListParams) ([]models.Publisher, int64, error) {
	var publishers []models.Publisher
	var total int64

	query := r.db.Model(&models.Publisher{})
	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("name asc").Offset(offset).Limit(params.Limit).Find(&publishers).Error
	return publishers, total, err
}
