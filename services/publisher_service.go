package services

import (
	"errors"

	"newsroom-api/models"
	"newsroom-api/policy"
	"newsroom-api/repositories"

	"gorm.io/gorm"
)

type PublisherService interface {
	CreatePublisher(req models.CreatePublisherRequest, user *models.User) (*models.Publisher, error)
	GetPublisher(id uint) (*models.Publisher, error)
	GetPublishers(params models.ListParams) ([]models.Publisher, int64, error)
}

type publisherService struct {
	publisherRepo repositories.PublisherRepository
	userRepo      repositories.UserRepository
}

func NewPublisherService(publisherRepo repositories.PublisherRepository, userRepo repositories.UserRepository) PublisherService {
	return &publisherService{
		publisherRepo: publisherRepo,
		userRepo:      userRepo,
	}
}

func (s *publisherService) CreatePublisher(req models.CreatePublisherRequest, user *models.User) (*models.Publisher, error) {
	if !policy.CanApprove(user) {
		return nil, models.ErrorForbidden{Message: "only editors can create publishers"}
	}

	publisher := &models.Publisher{
		Name:        req.Name,
		Description: req.Description,
	}

	// Membership is restricted to journalist accounts.
	for _, id := range req.Journalists {
		member, err := s.userRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "journalist not found"}
			}
			return nil, err
		}
		if member.Role != models.RoleJournalist {
			return nil, models.ErrorValidation{Message: "publisher members must be journalists"}
		}
		publisher.Journalists = append(publisher.Journalists, *member)
	}

	if err := s.publisherRepo.Create(publisher); err != nil {
		return nil, err
	}

	return publisher, nil
}

func (s *publisherService) GetPublisher(id uint) (*models.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "publisher not found"}
		}
		return nil, err
	}
	return publisher, nil
}

func (s *publisherService) GetPublishers(params models.ListParams) ([]models.Publisher, int64, error) {
	return s.publisherRepo.GetList(params)
}
