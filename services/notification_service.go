package services

import (
	"fmt"

	"newsroom-api/models"
	"newsroom-api/repositories"

	"go.uber.org/zap"
)

// NotificationService fans out approval notifications to subscribers.
// Delivery is best-effort and fire-and-forget: failures are logged and
// never surface to the approval call.
type NotificationService interface {
	NotifyArticleApproved(article *models.Article)
	NotifyNewsletterApproved(newsletter *models.Newsletter)
}

type notificationService struct {
	subscriptionRepo repositories.SubscriptionRepository
	logger           *zap.Logger
}

func NewNotificationService(subscriptionRepo repositories.SubscriptionRepository, logger *zap.Logger) NotificationService {
	return &notificationService{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (s *notificationService) NotifyArticleApproved(article *models.Article) {
	s.notify("article", article.ID, article.Title, article.Author.Username, article.AuthorID, article.PublisherID)
}

func (s *notificationService) NotifyNewsletterApproved(newsletter *models.Newsletter) {
	s.notify("newsletter", newsletter.ID, newsletter.Title, newsletter.Author.Username, newsletter.AuthorID, newsletter.PublisherID)
}

func (s *notificationService) notify(kind string, id uint, title, authorName string, authorID uint, publisherID *uint) {
	recipients := map[uint]models.User{}

	subscribers, err := s.subscriptionRepo.SubscribersOfJournalist(authorID)
	if err != nil {
		s.logger.Warn("failed to load journalist subscribers",
			zap.String("kind", kind), zap.Uint("id", id), zap.Error(err))
	}
	for _, u := range subscribers {
		recipients[u.ID] = u
	}

	if publisherID != nil {
		subscribers, err = s.subscriptionRepo.SubscribersOfPublisher(*publisherID)
		if err != nil {
			s.logger.Warn("failed to load publisher subscribers",
				zap.String("kind", kind), zap.Uint("id", id), zap.Error(err))
		}
		for _, u := range subscribers {
			recipients[u.ID] = u
		}
	}

	for _, u := range recipients {
		s.sendEmail(u, kind, title)
	}

	s.postToSocial(kind, title, authorName)

	s.logger.Info("approval notifications sent",
		zap.String("kind", kind),
		zap.Uint("id", id),
		zap.Int("recipients", len(recipients)))
}

// sendEmail logs the outgoing message. Wiring a real SMTP transport is
// a deployment concern; the content and recipients are final here.
func (s *notificationService) sendEmail(user models.User, kind, title string) {
	s.logger.Info("email notification",
		zap.String("to", user.Email),
		zap.String("subject", fmt.Sprintf("New %s published: %s", kind, title)))
}

// postToSocial simulates the social-media announcement.
func (s *notificationService) postToSocial(kind, title, authorName string) {
	s.logger.Info("social post",
		zap.String("text", fmt.Sprintf("New %s: %s by %s", kind, title, authorName)))
}
