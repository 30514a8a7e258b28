package model

import "time"

// Event is a calendar entry created by an admin. EventDate and EventTime are
// ISO strings (YYYY-MM-DD, HH:MM) so that lexicographic ordering matches
// chronological ordering and the date route can filter by plain equality.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	EventDate   string    `json:"event_date" gorm:"size:10;not null;index"`
	EventTime   string    `json:"event_time" gorm:"size:5"`
	Location    string    `json:"location" gorm:"size:255"`
	AdminID     uint      `json:"admin_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`

	// Author is the creator's username, filled by a LEFT JOIN on reads.
	Author string `json:"author" gorm:"->;-:migration"`
}
