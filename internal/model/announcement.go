package model

import "time"

// Announcement is a site-wide notice created by an admin.
type Announcement struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Category  string    `json:"category" gorm:"size:100;not null;index"`
	AdminID   uint      `json:"admin_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`

	// Author is the creator's username, filled by a LEFT JOIN on reads.
	// Empty if the admin row no longer exists.
	Author string `json:"author" gorm:"->;-:migration"`
}
