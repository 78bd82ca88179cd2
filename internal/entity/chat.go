package entity

import "time"

// Message is a direct message inside a match conversation. The match itself is
// the conversation; only its two participants may read or write.
type Message struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	MatchID   uint      `gorm:"column:match_id;not null;index"`
	SenderID  uint      `gorm:"column:sender_id;not null"`
	Body      string    `gorm:"column:body;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null"`
}

func (Message) TableName() string {
	return "messages"
}
