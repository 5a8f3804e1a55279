package models

import (
	"time"

	"gorm.io/gorm"
)

type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
	StatusRejected ContentStatus = "rejected"
)

// Terminal reports whether a status admits no further transitions.
func (s ContentStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Content is implemented by Article and Newsletter so the visibility
// rules can be written once.
type Content interface {
	AuthorRef() uint
	CurrentStatus() ContentStatus
}

type Article struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	Title        string         `json:"title" gorm:"not null"`
	Content      string         `json:"content" gorm:"type:text"`
	AuthorID     uint           `json:"author_id" gorm:"not null"`
	Author       User           `json:"author" gorm:"foreignKey:AuthorID"`
	PublisherID  *uint          `json:"publisher_id"`
	Publisher    *Publisher     `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	Status       ContentStatus  `json:"status" gorm:"default:'pending'"`
	ApprovedByID *uint          `json:"approved_by_id"`
	ApprovedBy   *User          `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (a *Article) AuthorRef() uint              { return a.AuthorID }
func (a *Article) CurrentStatus() ContentStatus { return a.Status }
