package services

import (
	"errors"

	"newsroom-api/models"
	"newsroom-api/policy"
	"newsroom-api/repositories"

	"gorm.io/gorm"
)

type NewsletterService interface {
	Submit(req models.CreateNewsletterRequest, author *models.User) (*models.Newsletter, error)
	GetNewsletter(id uint, user *models.User) (*models.Newsletter, error)
	ListNewsletters(params models.ListParams, user *models.User) ([]models.Newsletter, int64, error)
	ListSubscribed(params models.ListParams, user *models.User) ([]models.Newsletter, int64, error)
	Approve(id uint, editor *models.User) (*models.Newsletter, error)
	Reject(id uint, editor *models.User) (*models.Newsletter, error)
}

type newsletterService struct {
	newsletterRepo   repositories.NewsletterRepository
	publisherRepo    repositories.PublisherRepository
	subscriptionRepo repositories.SubscriptionRepository
	notifier         NotificationService
}

func NewNewsletterService(
	newsletterRepo repositories.NewsletterRepository,
	publisherRepo repositories.PublisherRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notifier NotificationService,
) NewsletterService {
	return &newsletterService{
		newsletterRepo:   newsletterRepo,
		publisherRepo:    publisherRepo,
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
	}
}

func (s *newsletterService) Submit(req models.CreateNewsletterRequest, author *models.User) (*models.Newsletter, error) {
	if !policy.CanSubmit(author) {
		return nil, models.ErrorValidation{Message: "only journalists can submit newsletters"}
	}

	if req.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(*req.PublisherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "publisher not found"}
			}
			return nil, err
		}
	}

	newsletter := &models.Newsletter{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    author.ID,
		PublisherID: req.PublisherID,
		Status:      models.StatusPending,
	}

	if err := s.newsletterRepo.Create(newsletter); err != nil {
		return nil, err
	}

	return s.newsletterRepo.GetByID(newsletter.ID)
}

func (s *newsletterService) GetNewsletter(id uint, user *models.User) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "newsletter not found"}
		}
		return nil, err
	}

	visible, err := s.canView(user, newsletter)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, models.ErrorNotFound{Message: "newsletter not found"}
	}

	return newsletter, nil
}

func (s *newsletterService) ListNewsletters(params models.ListParams, user *models.User) ([]models.Newsletter, int64, error) {
	return s.newsletterRepo.GetVisible(user, params)
}

func (s *newsletterService) ListSubscribed(params models.ListParams, user *models.User) ([]models.Newsletter, int64, error) {
	if user.Role != models.RoleReader {
		return nil, 0, models.ErrorForbidden{Message: "this endpoint is for readers only"}
	}
	return s.newsletterRepo.GetSubscribed(user.ID, params)
}

func (s *newsletterService) Approve(id uint, editor *models.User) (*models.Newsletter, error) {
	newsletter, err := s.transition(id, models.StatusApproved, editor)
	if err != nil {
		return nil, err
	}

	go s.notifier.NotifyNewsletterApproved(newsletter)

	return newsletter, nil
}

func (s *newsletterService) Reject(id uint, editor *models.User) (*models.Newsletter, error) {
	return s.transition(id, models.StatusRejected, editor)
}

func (s *newsletterService) transition(id uint, status models.ContentStatus, editor *models.User) (*models.Newsletter, error) {
	if !policy.CanApprove(editor) {
		return nil, models.ErrorForbidden{Message: "only editors can review newsletters"}
	}

	if _, err := s.newsletterRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "newsletter not found"}
		}
		return nil, err
	}

	var approvedBy *uint
	if status == models.StatusApproved {
		approvedBy = &editor.ID
	}

	updated, err := s.newsletterRepo.UpdateStatusIfPending(id, status, approvedBy)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, models.ErrorInvalidState{Message: "newsletter is not pending"}
	}

	return s.newsletterRepo.GetByID(id)
}

func (s *newsletterService) canView(user *models.User, newsletter *models.Newsletter) (bool, error) {
	subscribedPublisher := false
	subscribedAuthor := false

	if user.Role == models.RoleReader {
		var err error
		if newsletter.PublisherID != nil {
			subscribedPublisher, err = s.subscriptionRepo.IsSubscribedToPublisher(user.ID, *newsletter.PublisherID)
			if err != nil {
				return false, err
			}
		}
		subscribedAuthor, err = s.subscriptionRepo.IsSubscribedToJournalist(user.ID, newsletter.AuthorID)
		if err != nil {
			return false, err
		}
	}

	return policy.CanView(user, newsletter, subscribedPublisher, subscribedAuthor), nil
}
