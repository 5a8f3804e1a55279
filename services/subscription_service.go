package services

import (
	"errors"

	"newsroom-api/models"
	"newsroom-api/policy"
	"newsroom-api/repositories"

	"gorm.io/gorm"
)

type SubscriptionService interface {
	SubscribeToPublisher(reader *models.User, publisherID uint) error
	UnsubscribeFromPublisher(reader *models.User, publisherID uint) error
	SubscribeToJournalist(reader *models.User, journalistID uint) error
	UnsubscribeFromJournalist(reader *models.User, journalistID uint) error
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	publisherRepo    repositories.PublisherRepository
	userRepo         repositories.UserRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	publisherRepo repositories.PublisherRepository,
	userRepo repositories.UserRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		publisherRepo:    publisherRepo,
		userRepo:         userRepo,
	}
}

func (s *subscriptionService) SubscribeToPublisher(reader *models.User, publisherID uint) error {
	if !policy.CanManageSubscriptions(reader) {
		return models.ErrorForbidden{Message: "only readers can subscribe to publishers"}
	}
	if err := s.publisherExists(publisherID); err != nil {
		return err
	}
	return s.subscriptionRepo.SubscribePublisher(reader.ID, publisherID)
}

func (s *subscriptionService) UnsubscribeFromPublisher(reader *models.User, publisherID uint) error {
	if !policy.CanManageSubscriptions(reader) {
		return models.ErrorForbidden{Message: "only readers can manage subscriptions"}
	}
	if err := s.publisherExists(publisherID); err != nil {
		return err
	}
	return s.subscriptionRepo.UnsubscribePublisher(reader.ID, publisherID)
}

func (s *subscriptionService) SubscribeToJournalist(reader *models.User, journalistID uint) error {
	if !policy.CanManageSubscriptions(reader) {
		return models.ErrorForbidden{Message: "only readers can subscribe to journalists"}
	}
	target, err := s.userRepo.GetByID(journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "journalist not found"}
		}
		return err
	}
	if target.Role != models.RoleJournalist {
		return models.ErrorValidation{Message: "can only subscribe to journalists"}
	}
	return s.subscriptionRepo.SubscribeJournalist(reader.ID, journalistID)
}

func (s *subscriptionService) UnsubscribeFromJournalist(reader *models.User, journalistID uint) error {
	if !policy.CanManageSubscriptions(reader) {
		return models.ErrorForbidden{Message: "only readers can manage subscriptions"}
	}
	if _, err := s.userRepo.GetByID(journalistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "journalist not found"}
		}
		return err
	}
	return s.subscriptionRepo.UnsubscribeJournalist(reader.ID, journalistID)
}

func (s *subscriptionService) publisherExists(id uint) error {
	if _, err := s.publisherRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "publisher not found"}
		}
		return err
	}
	return nil
}
