package services

import (
	"newsroom-api/models"
	"newsroom-api/repositories"
)

type UserService interface {
	GetJournalists(params models.ListParams) ([]models.User, int64, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetJournalists(params models.ListParams) ([]models.User, int64, error) {
	return s.userRepo.GetJournalists(params)
}
