package entity

import "time"

// Match rows store the pair normalized so that UserAID < UserBID; the unique
// index on (user_a_id, user_b_id) then covers both swipe directions.
type Match struct {
	ID         uint      `gorm:"primaryKey;column:id"`
	UserAID    uint      `gorm:"column:user_a_id;not null;uniqueIndex:idx_matches_pair"`
	UserBID    uint      `gorm:"column:user_b_id;not null;uniqueIndex:idx_matches_pair"`
	ProfileAID uint      `gorm:"column:profile_a_id;not null"`
	ProfileBID uint      `gorm:"column:profile_b_id;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp;not null"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) HasUser(userID uint) bool {
	return m.UserAID == userID || m.UserBID == userID
}

func (m *Match) OtherUserID(userID uint) (uint, bool) {
	if m.UserAID == userID {
		return m.UserBID, true
	}
	if m.UserBID == userID {
		return m.UserAID, true
	}
	return 0, false
}
