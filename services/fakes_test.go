package services

import (
	"time"

	"newsroom-api/models"

	"gorm.io/gorm"
)

// In-memory repositories backing the service tests. They honor the
// same contracts as the gorm implementations: unique subscription
// edges, ErrRecordNotFound on misses, and the pending-only guard on
// status updates.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetJournalists(params models.ListParams) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.RoleJournalist {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

type fakePublisherRepo struct {
	publishers map[uint]*models.Publisher
	nextID     uint
}

func newFakePublisherRepo() *fakePublisherRepo {
	return &fakePublisherRepo{publishers: map[uint]*models.Publisher{}, nextID: 1}
}

func (r *fakePublisherRepo) Create(p *models.Publisher) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.publishers[p.ID] = &cp
	return nil
}

func (r *fakePublisherRepo) GetByID(id uint) (*models.Publisher, error) {
	p, ok := r.publishers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePublisherRepo) GetList(params models.ListParams) ([]models.Publisher, int64, error) {
	var out []models.Publisher
	for _, p := range r.publishers {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type edge struct{ reader, target uint }

type fakeSubscriptionRepo struct {
	publisherEdges  map[edge]bool
	journalistEdges map[edge]bool
	users           *fakeUserRepo
}

func newFakeSubscriptionRepo(users *fakeUserRepo) *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		publisherEdges:  map[edge]bool{},
		journalistEdges: map[edge]bool{},
		users:           users,
	}
}

func (r *fakeSubscriptionRepo) SubscribePublisher(readerID, publisherID uint) error {
	r.publisherEdges[edge{readerID, publisherID}] = true
	return nil
}

func (r *fakeSubscriptionRepo) UnsubscribePublisher(readerID, publisherID uint) error {
	delete(r.publisherEdges, edge{readerID, publisherID})
	return nil
}

func (r *fakeSubscriptionRepo) SubscribeJournalist(readerID, journalistID uint) error {
	r.journalistEdges[edge{readerID, journalistID}] = true
	return nil
}

func (r *fakeSubscriptionRepo) UnsubscribeJournalist(readerID, journalistID uint) error {
	delete(r.journalistEdges, edge{readerID, journalistID})
	return nil
}

func (r *fakeSubscriptionRepo) IsSubscribedToPublisher(readerID, publisherID uint) (bool, error) {
	return r.publisherEdges[edge{readerID, publisherID}], nil
}

func (r *fakeSubscriptionRepo) IsSubscribedToJournalist(readerID, journalistID uint) (bool, error) {
	return r.journalistEdges[edge{readerID, journalistID}], nil
}

func (r *fakeSubscriptionRepo) SubscribersOfPublisher(publisherID uint) ([]models.User, error) {
	var out []models.User
	for e := range r.publisherEdges {
		if e.target == publisherID {
			if u, err := r.users.GetByID(e.reader); err == nil {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) SubscribersOfJournalist(journalistID uint) ([]models.User, error) {
	var out []models.User
	for e := range r.journalistEdges {
		if e.target == journalistID {
			if u, err := r.users.GetByID(e.reader); err == nil {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint
	subs     *fakeSubscriptionRepo
}

func newFakeArticleRepo(subs *fakeSubscriptionRepo) *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uint]*models.Article{}, nextID: 1, subs: subs}
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	article.CreatedAt = time.Now()
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) GetVisible(user *models.User, params models.ListParams) ([]models.Article, int64, error) {
	var out []models.Article
	for _, a := range r.articles {
		switch user.Role {
		case models.RoleEditor:
			out = append(out, *a)
		case models.RoleJournalist:
			if a.AuthorID == user.ID {
				out = append(out, *a)
			}
		default:
			if r.readerCanSee(user.ID, a) {
				out = append(out, *a)
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeArticleRepo) GetSubscribed(readerID uint, params models.ListParams) ([]models.Article, int64, error) {
	var out []models.Article
	for _, a := range r.articles {
		if r.readerCanSee(readerID, a) {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeArticleRepo) readerCanSee(readerID uint, a *models.Article) bool {
	if a.Status != models.StatusApproved {
		return false
	}
	if a.PublisherID != nil {
		if ok, _ := r.subs.IsSubscribedToPublisher(readerID, *a.PublisherID); ok {
			return true
		}
	}
	ok, _ := r.subs.IsSubscribedToJournalist(readerID, a.AuthorID)
	return ok
}

func (r *fakeArticleRepo) UpdateStatusIfPending(id uint, status models.ContentStatus, approvedByID *uint) (bool, error) {
	a, ok := r.articles[id]
	if !ok || a.Status != models.StatusPending {
		return false, nil
	}
	a.Status = status
	a.ApprovedByID = approvedByID
	return true, nil
}

type fakeNewsletterRepo struct {
	newsletters map[uint]*models.Newsletter
	nextID      uint
	subs        *fakeSubscriptionRepo
}

func newFakeNewsletterRepo(subs *fakeSubscriptionRepo) *fakeNewsletterRepo {
	return &fakeNewsletterRepo{newsletters: map[uint]*models.Newsletter{}, nextID: 1, subs: subs}
}

func (r *fakeNewsletterRepo) Create(n *models.Newsletter) error {
	n.ID = r.nextID
	r.nextID++
	n.CreatedAt = time.Now()
	cp := *n
	r.newsletters[n.ID] = &cp
	return nil
}

func (r *fakeNewsletterRepo) GetByID(id uint) (*models.Newsletter, error) {
	n, ok := r.newsletters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNewsletterRepo) GetVisible(user *models.User, params models.ListParams) ([]models.Newsletter, int64, error) {
	var out []models.Newsletter
	for _, n := range r.newsletters {
		switch user.Role {
		case models.RoleEditor:
			out = append(out, *n)
		case models.RoleJournalist:
			if n.AuthorID == user.ID {
				out = append(out, *n)
			}
		default:
			if r.readerCanSee(user.ID, n) {
				out = append(out, *n)
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNewsletterRepo) GetSubscribed(readerID uint, params models.ListParams) ([]models.Newsletter, int64, error) {
	var out []models.Newsletter
	for _, n := range r.newsletters {
		if r.readerCanSee(readerID, n) {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNewsletterRepo) readerCanSee(readerID uint, n *models.Newsletter) bool {
	if n.Status != models.StatusApproved {
		return false
	}
	if n.PublisherID != nil {
		if ok, _ := r.subs.IsSubscribedToPublisher(readerID, *n.PublisherID); ok {
			return true
		}
	}
	ok, _ := r.subs.IsSubscribedToJournalist(readerID, n.AuthorID)
	return ok
}

func (r *fakeNewsletterRepo) UpdateStatusIfPending(id uint, status models.ContentStatus, approvedByID *uint) (bool, error) {
	n, ok := r.newsletters[id]
	if !ok || n.Status != models.StatusPending {
		return false, nil
	}
	n.Status = status
	n.ApprovedByID = approvedByID
	return true, nil
}

type notifierCall struct {
	kind string
	id   uint
}

type fakeNotifier struct {
	calls chan notifierCall
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan notifierCall, 8)}
}

func (n *fakeNotifier) NotifyArticleApproved(article *models.Article) {
	n.calls <- notifierCall{kind: "article", id: article.ID}
}

func (n *fakeNotifier) NotifyNewsletterApproved(newsletter *models.Newsletter) {
	n.calls <- notifierCall{kind: "newsletter", id: newsletter.ID}
}
