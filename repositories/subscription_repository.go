package repositories

import (
	"newsroom-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	SubscribePublisher(readerID, publisherID uint) error
	UnsubscribePublisher(readerID, publisherID uint) error
	SubscribeJournalist(readerID, journalistID uint) error
	UnsubscribeJournalist(readerID, journalistID uint) error
	IsSubscribedToPublisher(readerID, publisherID uint) (bool, error)
	IsSubscribedToJournalist(readerID, journalistID uint) (bool, error)
	SubscribersOfPublisher(publisherID uint) ([]models.User, error)
	SubscribersOfJournalist(journalistID uint) ([]models.User, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// SubscribePublisher inserts the edge if absent. The composite unique
// index plus ON CONFLICT DO NOTHING makes a duplicate subscribe a
// no-op rather than an error.
func (r *subscriptionRepository) SubscribePublisher(readerID, publisherID uint) error {
	edge := models.PublisherSubscription{ReaderID: readerID, PublisherID: publisherID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

// UnsubscribePublisher removes the edge. Deleting a missing edge is a
// no-op.
func (r *subscriptionRepository) UnsubscribePublisher(readerID, publisherID uint) error {
	return r.db.Where("reader_id = ? AND publisher_id = ?", readerID, publisherID).
		Delete(&models.PublisherSubscription{}).Error
}

func (r *subscriptionRepository) SubscribeJournalist(readerID, journalistID uint) error {
	edge := models.JournalistSubscription{ReaderID: readerID, JournalistID: journalistID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

func (r *subscriptionRepository) UnsubscribeJournalist(readerID, journalistID uint) error {
	return r.db.Where("reader_id = ? AND journalist_id = ?", readerID, journalistID).
		Delete(&models.JournalistSubscription{}).Error
}

func (r *subscriptionRepository) IsSubscribedToPublisher(readerID, publisherID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PublisherSubscription{}).
		Where("reader_id = ? AND publisher_id = ?", readerID, publisherID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) IsSubscribedToJournalist(readerID, journalistID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.JournalistSubscription{}).
		Where("reader_id = ? AND journalist_id = ?", readerID, journalistID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) SubscribersOfPublisher(publisherID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN publisher_subscriptions ON publisher_subscriptions.reader_id = users.id").
		Where("publisher_subscriptions.publisher_id = ?", publisherID).
		Find(&users).Error
	return users, err
}

func (r *subscriptionRepository) SubscribersOfJournalist(journalistID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN journalist_subscriptions ON journalist_subscriptions.reader_id = users.id").
		Where("journalist_subscriptions.journalist_id = ?", journalistID).
		Find(&users).Error
	return users, err
}
