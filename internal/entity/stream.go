package entity

import "time"

// LiveStream is a live session hosted by a user. There is no media pipeline;
// CoverURL points at a static image that stands in for the video.
type LiveStream struct {
	ID        uint       `gorm:"primaryKey;column:id"`
	HostID    uint       `gorm:"column:host_id;not null;index"`
	Title     string     `gorm:"column:title;not null"`
	CoverURL  string     `gorm:"column:cover_url"`
	IsLive    bool       `gorm:"column:is_live;not null;default:true"`
	StartedAt time.Time  `gorm:"column:started_at;type:timestamp;not null"`
	EndedAt   *time.Time `gorm:"column:ended_at;type:timestamp"`
}

func (LiveStream) TableName() string {
	return "live_streams"
}

type StreamMessage struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	StreamID  uint      `gorm:"column:stream_id;not null;index"`
	SenderID  uint      `gorm:"column:sender_id;not null"`
	Body      string    `gorm:"column:body;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null"`
}

func (StreamMessage) TableName() string {
	return "stream_messages"
}
