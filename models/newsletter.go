package models

import (
	"time"

	"gorm.io/gorm"
)

// Newsletter follows the same lifecycle as Article: written by a
// journalist, gated by editor approval, delivered to subscribers.
type Newsletter struct {
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

func (n *Newsletter) AuthorRef() uint              { return n.AuthorID }
func (n *Newsletter) CurrentStatus() ContentStatus { return n.Status }
