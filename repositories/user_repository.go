package repositories

import (
	"newsroom-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetJournalists(params models.ListParams) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

// GetJournalists lists journalist accounts only, the valid targets for
// reader subscriptions.
func (r *userRepository) GetJournalists(params models.ListParams) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("role = ?", models.RoleJournalist)
	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("username asc").Offset(offset).Limit(params.Limit).Find(&users).Error
	return users, total, err
}
