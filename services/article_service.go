package services

import (
	"errors"

	"newsroom-api/models"
	"newsroom-api/policy"
	"newsroom-api/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	Submit(req models.CreateArticleRequest, author *models.User) (*models.Article, error)
	GetArticle(id uint, user *models.User) (*models.Article, error)
	ListArticles(params models.ListParams, user *models.User) ([]models.Article, int64, error)
	ListSubscribed(params models.ListParams, user *models.User) ([]models.Article, int64, error)
	Approve(id uint, editor *models.User) (*models.Article, error)
	Reject(id uint, editor *models.User) (*models.Article, error)
}

type articleService struct {
	articleRepo      repositories.ArticleRepository
	publisherRepo    repositories.PublisherRepository
	subscriptionRepo repositories.SubscriptionRepository
	notifier         NotificationService
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	publisherRepo repositories.PublisherRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notifier NotificationService,
) ArticleService {
	return &articleService{
		articleRepo:      articleRepo,
		publisherRepo:    publisherRepo,
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
	}
}

// Submit creates a new article in pending state. Only journalists may
// author content; a resubmission after rejection is simply a new
// pending row.
func (s *articleService) Submit(req models.CreateArticleRequest, author *models.User) (*models.Article, error) {
	if !policy.CanSubmit(author) {
		return nil, models.ErrorValidation{Message: "only journalists can submit articles"}
	}

	if req.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(*req.PublisherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "publisher not found"}
			}
			return nil, err
		}
	}

	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    author.ID,
		PublisherID: req.PublisherID,
		Status:      models.StatusPending,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, user *models.User) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	visible, err := s.canView(user, article)
	if err != nil {
		return nil, err
	}
	if !visible {
		// Hidden content is indistinguishable from absent content.
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	return article, nil
}

func (s *articleService) ListArticles(params models.ListParams, user *models.User) ([]models.Article, int64, error) {
	return s.articleRepo.GetVisible(user, params)
}

func (s *articleService) ListSubscribed(params models.ListParams, user *models.User) ([]models.Article, int64, error) {
	if user.Role != models.RoleReader {
		return nil, 0, models.ErrorForbidden{Message: "this endpoint is for readers only"}
	}
	return s.articleRepo.GetSubscribed(user.ID, params)
}

// Approve moves a pending article to approved and notifies the
// author's and publisher's subscribers. The transition is a
// conditional update, so a concurrent approve/reject on the same row
// resolves to exactly one winner.
func (s *articleService) Approve(id uint, editor *models.User) (*models.Article, error) {
	article, err := s.transition(id, models.StatusApproved, editor)
	if err != nil {
		return nil, err
	}

	go s.notifier.NotifyArticleApproved(article)

	return article, nil
}

func (s *articleService) Reject(id uint, editor *models.User) (*models.Article, error) {
	return s.transition(id, models.StatusRejected, editor)
}

func (s *articleService) transition(id uint, status models.ContentStatus, editor *models.User) (*models.Article, error) {
	if !policy.CanApprove(editor) {
		return nil, models.ErrorForbidden{Message: "only editors can review articles"}
	}

	if _, err := s.articleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	var approvedBy *uint
	if status == models.StatusApproved {
		approvedBy = &editor.ID
	}

	updated, err := s.articleRepo.UpdateStatusIfPending(id, status, approvedBy)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, models.ErrorInvalidState{Message: "article is not pending"}
	}

	return s.articleRepo.GetByID(id)
}

func (s *articleService) canView(user *models.User, article *models.Article) (bool, error) {
	subscribedPublisher := false
	subscribedAuthor := false

	// Subscription edges only matter for readers.
	if user.Role == models.RoleReader {
		var err error
		if article.PublisherID != nil {
			subscribedPublisher, err = s.subscriptionRepo.IsSubscribedToPublisher(user.ID, *article.PublisherID)
			if err != nil {
				return false, err
			}
		}
		subscribedAuthor, err = s.subscriptionRepo.IsSubscribedToJournalist(user.ID, article.AuthorID)
		if err != nil {
			return false, err
		}
	}

	return policy.CanView(user, article, subscribedPublisher, subscribedAuthor), nil
}
