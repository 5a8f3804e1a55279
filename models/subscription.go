package models

import "time"

// Subscription edges are stored as explicit rows with a composite
// unique index, so duplicate subscribes collapse to a single edge at
// the database level.

type PublisherSubscription struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ReaderID    uint      `json:"reader_id" gorm:"not null;uniqueIndex:idx_reader_publisher"`
	PublisherID uint      `json:"publisher_id" gorm:"not null;uniqueIndex:idx_reader_publisher"`
	CreatedAt   time.Time `json:"created_at"`
}

type JournalistSubscription struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	ReaderID     uint      `json:"reader_id" gorm:"not null;uniqueIndex:idx_reader_journalist"`
	JournalistID uint      `json:"journalist_id" gorm:"not null;uniqueIndex:idx_reader_journalist"`
	CreatedAt    time.Time `json:"created_at"`
}
